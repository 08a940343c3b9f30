package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connect4/config"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestEvaluationsCmd(t *testing.T) {
	out, err := execute(t, "evaluations")

	require.NoError(t, err)
	require.Equal(t, "center\nscore\nthreats\nthreats_center\n", out)
}

func TestPlayCmd(t *testing.T) {
	t.Run("playing a game to the end", func(t *testing.T) {
		out, err := execute(t, "play", "--x", "alphabeta", "--o", "best", "--depth", "2", "--eval", "threats")

		require.NoError(t, err)
		require.Contains(t, out, "move 1: X drops in column")
		require.Contains(t, out, "result: ")
		require.Contains(t, out, " 0 1 2 3 4 5 6 \n")
	})

	t.Run("letting O move first", func(t *testing.T) {
		out, err := execute(t, "play", "--x", "random", "--o", "random", "--first", "o")

		require.NoError(t, err)
		require.Contains(t, out, "move 1: O drops in column")
	})

	t.Run("refusing expectimax as O", func(t *testing.T) {
		_, err := execute(t, "play", "--x", "random", "--o", "expectimax")

		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("refusing an unknown side", func(t *testing.T) {
		_, err := execute(t, "play", "--first", "z")

		require.ErrorContains(t, err, `unknown side "z"`)
	})
}

func TestTournamentCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tournament.yaml")

	out, err := execute(t, "init", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.Tournament.Games = 2
	cfg.Tournament.OutDir = filepath.Join(dir, "out")
	require.NoError(t, config.Write(path, cfg))

	out, err = execute(t, "tournament", "--config", path)

	require.NoError(t, err)
	require.Contains(t, out, "records written to "+filepath.Join(dir, "out", "default"))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "Header, one standing and the output directory")
	require.True(t, strings.HasPrefix(lines[1], "1  2"), lines[1])
}

func TestSweepCmd(t *testing.T) {
	out := t.TempDir()

	_, err := execute(t, "sweep", "--algorithm", "minimax", "--max-depth", "2", "--games", "2", "--out", out)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(out, "sweep_minimax"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = execute(t, "sweep", "--algorithm", "expectimax", "--out", out)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBenchCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	cfg := config.Default()
	cfg.Tournament.OutDir = dir
	require.NoError(t, config.Write(path, cfg))

	out, err := execute(t, "bench", "--config", path, "--positions", "2")

	require.NoError(t, err)
	require.Contains(t, out, "records written to "+filepath.Join(dir, "default_throughput"))
}
