package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/getpup/deploy-bootstrap/command"
)

// appLayout is a throwaway on-disk layout standing in for the deployed
// application: a locale tree, a static root, and a volume mount.
type appLayout struct {
	Volume     string
	StaticRoot string
	LocaleDir  string
	PO         string
}

// setupLayout builds the layout under temp dirs, with one uncompiled catalog.
func setupLayout(t *testing.T) appLayout {
	t.Helper()

	locale := filepath.Join(t.TempDir(), "locale")
	msgDir := filepath.Join(locale, "de", "LC_MESSAGES")
	if err := os.MkdirAll(msgDir, 0o755); err != nil {
		t.Fatalf("failed to create locale tree: %v", err)
	}

	po := filepath.Join(msgDir, "django.po")
	if err := os.WriteFile(po, []byte(`msgid "hi"`), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	return appLayout{
		Volume:     t.TempDir(),
		StaticRoot: t.TempDir(),
		LocaleDir:  locale,
		PO:         po,
	}
}

// workingCommander fakes a management CLI where every command succeeds and
// produces the side effects the steps verify afterwards.
func workingCommander(t *testing.T, layout appLayout) *command.MockCommander {
	t.Helper()

	mock := command.NewMockCommander()
	mock.ManageFunc = func(ctx context.Context, args ...string) ([]byte, error) {
		switch args[0] {
		case "compilemessages":
			mo := layout.PO[:len(layout.PO)-3] + ".mo"
			return nil, os.WriteFile(mo, []byte{0xde, 0x12}, 0o644)
		case "collectstatic":
			return nil, os.MkdirAll(filepath.Join(layout.StaticRoot, "admin"), 0o755)
		case "showmigrations":
			return []byte("[X] app.0001_initial\n"), nil
		default:
			return nil, nil
		}
	}
	return mock
}
