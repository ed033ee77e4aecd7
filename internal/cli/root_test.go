package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songbook/internal/app"
	"github.com/llehouerou/songbook/internal/config"
	"github.com/llehouerou/songbook/internal/logging"
)

func execute(t *testing.T, run Runner, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(run)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := Run(context.Background(), cmd, args)
	return out.String(), err
}

func failRunner(t *testing.T) Runner {
	return func(context.Context, tea.Model) error {
		t.Error("program should not start")
		return nil
	}
}

func TestRoot_Version(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		t.Run(flag, func(t *testing.T) {
			out, err := execute(t, failRunner(t), flag)

			require.NoError(t, err)
			assert.Contains(t, out, "songbook v"+Version)
		})
	}
}

func TestRoot_Help(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			out, err := execute(t, failRunner(t), flag)

			require.NoError(t, err)
			assert.Contains(t, out, "Usage: songbook [OPTIONS]")
			assert.Contains(t, out, "<NONE>")
			assert.Contains(t, out, "-v, --version")
		})
	}
}

func TestRoot_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"play"}},
		{"two arguments", []string{"list", "all"}},
		{"unknown flag", []string{"--verbose"}},
		{"version with extra argument", []string{"-v", "extra"}},
		{"help with extra argument", []string{"-h", "extra"}},
		{"help and version", []string{"-h", "-v"}},
		{"long version and help", []string{"--version", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, failRunner(t), tt.args...)

			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), "--help")
			assert.NotContains(t, out, "songbook v"+Version)
			assert.NotContains(t, out, "Usage:")
		})
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(dir, "data", "songbook.db")
	cfg.Database.QueryTimeout = 0
	cfg.Log.File = filepath.Join(dir, "songbook.log")
	cfg.Log.Level = "debug"
	cfg.UI.Debug = true
	return cfg
}

func TestStart_RunsProgramOverOpenedStore(t *testing.T) {
	cfg := testConfig(t)

	ran := false
	err := start(context.Background(), cfg, func(_ context.Context, got tea.Model) error {
		ran = true
		m, ok := got.(*app.Model)
		require.True(t, ok, "model is %T", got)
		m.Init()
		assert.Empty(t, m.Songs())
		assert.False(t, m.Status().IsErr)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.FileExists(t, cfg.Database.Path)
	assert.FileExists(t, cfg.Log.File)
}

func TestStart_ProgramErrorReturned(t *testing.T) {
	cfg := testConfig(t)
	boom := errors.New("terminal gone")

	err := start(context.Background(), cfg, func(context.Context, tea.Model) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestStart_InvalidLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "loud"

	err := start(context.Background(), cfg, failRunner(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize application")
}

func TestNewModel_StartCommandFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = ""
	cfg.Database.StartCommand = "exit 1"

	_, _, err := newModel(context.Background(), cfg, logging.Discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start database service")
}

func TestNewModel_OpenFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = ""

	_, _, err := newModel(context.Background(), cfg, logging.Discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open database")
}
