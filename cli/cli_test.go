package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"supergame/game"
	"supergame/strategy"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+strategy.Standard().Len())
	require.Contains(t, lines[1], "ALLC")
	require.Contains(t, lines[20], "DCAlt")
	require.Contains(t, out, "Grim trigger")
}

func TestEvalCommand(t *testing.T) {
	t.Run("prints one line per strategy", func(t *testing.T) {
		out, err := execute(t, "eval", "--actions", "1,1,0,0,1", "--periods", "1,2,3,1,2")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1+strategy.Standard().Len())
	})

	t.Run("evaluates selected strategies over one supergame by default", func(t *testing.T) {
		out, err := execute(t, "eval", "--actions", "C,D,C,C,C", "--strategy", "2TFT", "--strategy", "GRIM")
		require.NoError(t, err)
		require.Contains(t, out, "C,C,D,D,C")
		require.Contains(t, out, "C,C,D,D,D")
	})

	t.Run("reports unknown strategies", func(t *testing.T) {
		_, err := execute(t, "eval", "--actions", "C", "--strategy", "NOPE")
		require.ErrorIs(t, err, strategy.ErrUnknownRule)
	})

	t.Run("reports length mismatches", func(t *testing.T) {
		_, err := execute(t, "eval", "--actions", "C,D", "--periods", "1,2,3")
		require.ErrorIs(t, err, game.ErrLengthMismatch)
	})

	t.Run("reports malformed actions", func(t *testing.T) {
		_, err := execute(t, "eval", "--actions", "C,X")
		require.ErrorIs(t, err, game.ErrMalformedInput)
	})
}

func TestSimulateAndRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "subjects.csv")

	_, err := execute(t, "simulate", "--subjects", "4", "--supergames", "3", "--strategy", "TF2T",
		"--tremble", "0", "--seed", "21", "--out", input)
	require.NoError(t, err)
	require.FileExists(t, input)

	out, err := execute(t, "run", "--input", input, "--output", dir, "--name", "cli", "--goroutines", "3")
	require.NoError(t, err)
	require.Contains(t, out, "s001")
	require.Contains(t, out, "1.000", "Generated play should be matched perfectly")
	require.Contains(t, out, "records written to")

	runs, err := os.ReadDir(filepath.Join(dir, "cli"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.FileExists(t, filepath.Join(dir, "cli", runs[0].Name(), "fits.csv"))
}

func TestRunCommandErrors(t *testing.T) {
	t.Run("missing input file", func(t *testing.T) {
		_, err := execute(t, "run", "--input", filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := execute(t, "--log-level", "loud", "list")
		require.Error(t, err)
	})
}
