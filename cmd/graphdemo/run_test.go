package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/internal/config"
)

const defaultReport = `Graph square edges:
(1, 2)
(1, 4)
(2, 3)
(3, 4)
Graph pairs edges:
(3, 4)
(5, 6)
Subgraph of square on [1 2 3]:
(1, 2)
(2, 3)
Union of square and pairs:
(1, 2)
(1, 4)
(2, 3)
(3, 4)
(5, 6)
Intersection of square and pairs:
(3, 4)
Vertex 7 disconnected in square: true
Degree of vertex 3 in square: 2
Path from 1 to 3 in square: true
`

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return log
}

func TestRun_DefaultScenario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, config.Default(), quietLogger()))

	assert.Equal(t, defaultReport, buf.String())
}

func TestRun_SkipsPathWhenUnset(t *testing.T) {
	sc := config.Default()
	sc.Queries.Path = nil

	var buf bytes.Buffer
	require.NoError(t, run(&buf, sc, quietLogger()))
	assert.NotContains(t, buf.String(), "Path from")
}

func TestRun_UnknownGraph(t *testing.T) {
	sc := config.Default()
	sc.Queries.Right = "missing"

	err := run(&bytes.Buffer{}, sc, quietLogger())
	assert.ErrorIs(t, err, config.ErrUnknownGraph)
}

type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestRun_WriteError(t *testing.T) {
	err := run(brokenWriter{}, config.Default(), quietLogger())
	assert.ErrorIs(t, err, errBroken)
}

func TestRootCmd_Default(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--log-level", "panic"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, defaultReport, out.String())
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.yaml")
	doc := "graphs:\n  - name: tri\n    edges: [[1, 2], [2, 3], [3, 1]]\nqueries:\n  degree: 1\n  disconnected: 2\n  path: [1, 9]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--log-level", "panic"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Intersection of tri and tri:\n(1, 2)\n(1, 3)\n(2, 3)\n")
	assert.Contains(t, out.String(), "Vertex 2 disconnected in tri: false\n")
	assert.Contains(t, out.String(), "Degree of vertex 1 in tri: 2\n")
	assert.Contains(t, out.String(), "Path from 1 to 9 in tri: false\n")
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud"})

	assert.ErrorContains(t, cmd.Execute(), "invalid --log-level")
}
