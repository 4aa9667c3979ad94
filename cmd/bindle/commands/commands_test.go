package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bindle/cmd/bindle/commands"
	"go.trai.ch/bindle/internal/adapters/logger"
	"go.trai.ch/bindle/internal/app"
	"go.trai.ch/bindle/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, entries []string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, entries []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, entries, opts)
	}
	return nil
}

func TestCommands_Bundle(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedEntries []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, entries []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedEntries = entries
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"bundle", "./app", "--manifest", "out.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "out.yaml", capturedOpts.ManifestPath)
		assert.Equal(t, []string{"./app"}, capturedEntries)
	})

	t.Run("no arguments falls back to configured entries", func(t *testing.T) {
		var capturedEntries []string

		mock := &mockApp{
			runFunc: func(_ context.Context, entries []string, _ app.RunOptions) error {
				capturedEntries = entries
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"bundle"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedEntries)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"bundle", "./app"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_BundleJSONFlag(t *testing.T) {
	lg := logger.New()
	buf := new(bytes.Buffer)
	lg.SetOutput(buf)

	cli := commands.New(&mockApp{}, lg)
	cli.SetArgs([]string{"bundle", "./app", "--json"})

	require.NoError(t, cli.Execute(context.Background()))

	lg.Info("after switch")
	assert.Contains(t, buf.String(), `"msg":"after switch"`)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bindle version "+build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"nope"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}
