package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppliesDefaults(t *testing.T) {
	cli := New(Config{})

	assert.Equal(t, "python", cli.config.Python)
	assert.Equal(t, "manage.py", cli.config.ManagePath)
}

func TestNew_PreservesNonEmptyValues(t *testing.T) {
	cli := New(Config{
		Python:     "python3",
		ManagePath: "/app/manage.py",
	})

	assert.Equal(t, "python3", cli.config.Python)
	assert.Equal(t, "/app/manage.py", cli.config.ManagePath)
}

func TestManage_PassesScriptAndArgs(t *testing.T) {
	// Use echo as the "interpreter" so the command succeeds and reflects
	// exactly what would have been executed.
	cli := New(Config{Python: "echo", ManagePath: "manage.py"})

	out, err := cli.Manage(context.Background(), "migrate", "--noinput")

	require.NoError(t, err)
	assert.Equal(t, "manage.py migrate --noinput", strings.TrimSpace(string(out)))
}

func TestManage_ReturnsOutputOnFailure(t *testing.T) {
	cli := New(Config{Python: "sh", ManagePath: "-c"})

	out, err := cli.Manage(context.Background(), "echo boom >&2; exit 3")

	require.Error(t, err)
	assert.Contains(t, string(out), "boom")
}

func TestSystem_RunsExecutable(t *testing.T) {
	cli := New(Config{})

	out, err := cli.System(context.Background(), "echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(string(out)))
}

func TestSystem_FailsForMissingExecutable(t *testing.T) {
	cli := New(Config{})

	_, err := cli.System(context.Background(), "definitely-not-a-real-binary-xyz")

	assert.Error(t, err)
}

func TestManage_RespectsContextCancellation(t *testing.T) {
	cli := New(Config{Python: "sleep", ManagePath: "5"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cli.Manage(ctx)

	assert.Error(t, err)
}
