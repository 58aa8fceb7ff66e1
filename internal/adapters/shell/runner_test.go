package shell_test

import (
	"context"
	"testing"

	"github.com/rapidsai/rapids-build-backend/internal/adapters/shell"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	out, err := runner.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunner_Run_ForwardsStderrToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("sh: warning line").Times(1)

	runner := shell.NewRunner(mockLogger)

	_, err := runner.Run(context.Background(), "sh", "-c", "echo 'warning line' >&2")
	require.NoError(t, err)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	_, err := runner.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestRunner_LookPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	path, err := runner.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = runner.LookPath("definitely-not-a-real-tool-12345")
	require.Error(t, err)
}
