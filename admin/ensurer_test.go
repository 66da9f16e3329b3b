package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/command"
)

func TestRun_CreatesAccount(t *testing.T) {
	mock := command.NewMockCommander()
	ensurer := New(Config{Commander: mock})

	attempts, err := ensurer.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	require.Len(t, mock.ManageCalls, 1)
	assert.Equal(t, []string{"createsuperuser", "--noinput"}, mock.ManageCalls[0].Args)
}

func TestRun_TreatsAlreadyExistsAsSuccess(t *testing.T) {
	mock := command.NewMockCommander()
	mock.ManageFunc = func(ctx context.Context, args ...string) ([]byte, error) {
		return []byte("Error: That username is already taken."), errors.New("exit status 1")
	}

	ensurer := New(Config{Commander: mock})

	_, err := ensurer.Run(context.Background())

	assert.NoError(t, err)
}

func TestRun_ReturnsOtherFailures(t *testing.T) {
	mock := command.NewMockCommander()
	wantErr := errors.New("exit status 1")
	mock.ManageFunc = func(ctx context.Context, args ...string) ([]byte, error) {
		return []byte("OperationalError: connection refused"), wantErr
	}

	ensurer := New(Config{Commander: mock})

	_, err := ensurer.Run(context.Background())

	assert.ErrorIs(t, err, wantErr)
}

func TestEnsurer_StepIdentity(t *testing.T) {
	ensurer := New(Config{Commander: command.NewMockCommander()})

	assert.Equal(t, bootstrap.StepAdmin, ensurer.Name())
	assert.Equal(t, bootstrap.PolicyTolerate, ensurer.Policy())
}
