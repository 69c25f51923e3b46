package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/qbftp/qbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeInstance(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inst.txt")
	_, err := run(t, "gen", "--seed", "5", "--out", path, strconv.Itoa(n))
	require.NoError(t, err)

	return path
}

func TestGen_RoundTrips(t *testing.T) {
	out, err := run(t, "gen", "--seed", "3", "6")
	require.NoError(t, err)

	ev, err := qbf.ReadInstance(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 6, ev.Size())
}

func TestGen_ToFile(t *testing.T) {
	path := writeInstance(t, 7)

	ev, err := qbf.LoadInstance(path)
	require.NoError(t, err)
	assert.Equal(t, 7, ev.Size())

	err = writeInstanceFile(filepath.Join(t.TempDir(), "missing", "inst.txt"), ev)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "gen", "--out", filepath.Join(t.TempDir(), "missing", "x.txt"), "5")
	assert.Error(t, err)
}

func TestGen_OrderAboveMaximum(t *testing.T) {
	_, err := run(t, "gen", strconv.Itoa(qbf.MaxOrder+1))
	assert.Error(t, err)
}

func TestEval_HugeHeaderFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	require.NoError(t, os.WriteFile(path, []byte("1000000000\n1 2 3\n"), 0o600))

	_, err := run(t, "eval", path, "0")
	assert.ErrorIs(t, err, qbf.ErrMalformedInstance)
}

func TestTriples(t *testing.T) {
	out, err := run(t, "triples", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "[0, 2, 6]", lines[0])
	assert.Equal(t, "[1, 3, 9]", lines[1])

	_, err = run(t, "triples", "2")
	assert.Error(t, err)

	_, err = run(t, "triples")
	assert.Error(t, err)
}

func TestTriples_FromInstance(t *testing.T) {
	path := writeInstance(t, 10)
	out, err := run(t, "triples", "--instance", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[0, 2, 6]\n"))
}

func TestEval(t *testing.T) {
	path := writeInstance(t, 10)

	out, err := run(t, "eval", path, "0", "2", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "size=[3]")
	assert.Contains(t, out, "violated triples: 1")
	assert.Contains(t, out, "[0, 2, 6]")

	out, err = run(t, "eval", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cost=[0]")

	_, err = run(t, "eval", path, "10")
	assert.ErrorIs(t, err, qbf.ErrIndexOutOfRange)
}

func TestSolve(t *testing.T) {
	path := writeInstance(t, 20)

	out, err := run(t, "solve", path, "-p", "10", "-g", "5", "-s", "7", "--restarts", "2", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "stop:        generations after 5 generations")
	assert.Contains(t, out, "restarts:    2")
	assert.Contains(t, out, "Solution: cost=")
}

func TestSolve_ConfigFile(t *testing.T) {
	path := writeInstance(t, 12)
	cfgPath := filepath.Join(t.TempDir(), "qbftp.yaml")
	cfg := "instance: " + path + "\nga:\n  population: 8\n  generations: 3\n  repair_choice: greedy\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, err := run(t, "--config", cfgPath, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "after 3 generations")
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve")
	assert.Error(t, err, "no instance")

	path := writeInstance(t, 10)
	_, err = run(t, "solve", path, "-p", "7")
	assert.Error(t, err, "odd population")

	_, err = run(t, "solve", path, "--log-level", "loud")
	assert.Error(t, err)
}
