package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takoeight0821/fredlang/internal/driver"
	"github.com/urfave/cli/v2"
)

func TestFlags(t *testing.T) {
	var flags Flags
	app := &cli.App{
		Name:   "fred",
		Flags:  flags.AsCliFlags(),
		Action: func(*cli.Context) error { return nil },
	}

	require.NoError(t, app.Run([]string{"fred", "-i", "prog.fred", "--verbose", "--dump-ast"}))
	assert.Equal(t, "prog.fred", flags.InputPath)
	assert.Equal(t, defaultHistory, flags.History)
	assert.True(t, flags.Verbose)
	assert.True(t, flags.DumpAST)
	assert.False(t, flags.DumpTokens)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.fred")
	require.NoError(t, os.WriteFile(path, []byte("# area\n(2 + 3) * 4\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, RunFile(driver.NewRunner(nil), path, &out))
	assert.Equal(t, "20\n", out.String())
}

func TestRunFileDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fred")
	require.NoError(t, os.WriteFile(path, []byte("(1 +"), 0o600))

	var out bytes.Buffer
	err := RunFile(driver.NewRunner(nil), path, &out)
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, []string{"at end: expected expression"}, messages(driver.Diagnostics(err)))
}

func TestRunFileMissing(t *testing.T) {
	err := RunFile(driver.NewRunner(nil), filepath.Join(t.TempDir(), "none.fred"), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEvaluateRendersEveryKind(t *testing.T) {
	testcases := map[string]string{
		"1 / 8":      "0.125",
		"\"hi\"":     "hi",
		"3 > 2":      "true",
		"null":       "null",
		"-(0.5 * 4)": "-2",
	}

	for input, expected := range testcases {
		var out bytes.Buffer
		require.NoError(t, evaluate(driver.NewRunner(nil), input, &out), input)
		assert.Equal(t, expected+"\n", out.String(), input)
	}
}

func TestPromptDone(t *testing.T) {
	assert.True(t, promptDone(io.EOF))
	assert.True(t, promptDone(liner.ErrPromptAborted))
	assert.True(t, promptDone(fmt.Errorf("prompt: %w", liner.ErrPromptAborted)))
	assert.False(t, promptDone(nil))
	assert.False(t, promptDone(errors.New("terminal gone")))
}

func messages(errs []error) []string {
	var s []string
	for _, err := range errs {
		s = append(s, err.Error())
	}
	return s
}
