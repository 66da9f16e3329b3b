package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCommander_RecordsManageCalls(t *testing.T) {
	mock := NewMockCommander()

	_, err := mock.Manage(context.Background(), "migrate", "--noinput")

	require.NoError(t, err)
	require.Len(t, mock.ManageCalls, 1)
	assert.Equal(t, []string{"migrate", "--noinput"}, mock.ManageCalls[0].Args)
}

func TestMockCommander_RecordsSystemCalls(t *testing.T) {
	mock := NewMockCommander()

	_, err := mock.System(context.Background(), "msgfmt", "-o", "out.mo", "in.po")

	require.NoError(t, err)
	require.Len(t, mock.SystemCalls, 1)
	assert.Equal(t, "msgfmt", mock.SystemCalls[0].Name)
	assert.Equal(t, []string{"-o", "out.mo", "in.po"}, mock.SystemCalls[0].Args)
}

func TestMockCommander_UsesManageFunc(t *testing.T) {
	mock := NewMockCommander()
	wantErr := errors.New("migration failed")
	mock.ManageFunc = func(ctx context.Context, args ...string) ([]byte, error) {
		return []byte("some output"), wantErr
	}

	out, err := mock.Manage(context.Background(), "migrate")

	assert.Equal(t, "some output", string(out))
	assert.ErrorIs(t, err, wantErr)
	assert.Len(t, mock.ManageCalls, 1)
}

func TestMockCommander_DefaultsToSuccess(t *testing.T) {
	mock := NewMockCommander()

	out, err := mock.Manage(context.Background(), "collectstatic")

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestMockCommander_ResetClearsHistory(t *testing.T) {
	mock := NewMockCommander()
	_, _ = mock.Manage(context.Background(), "migrate")
	_, _ = mock.System(context.Background(), "msgfmt")

	mock.Reset()

	assert.Empty(t, mock.ManageCalls)
	assert.Empty(t, mock.SystemCalls)
}
