package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitWritesAtLevel(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var out bytes.Buffer
	Init(Options{Enabled: true, Writer: &out, Level: slog.LevelWarn})
	Debug("hidden", "k", 1)
	Warn("shown", "k", 2)

	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "msg=shown")
	require.Contains(t, out.String(), "k=2")
}

func TestInitJSON(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var out bytes.Buffer
	Init(Options{Enabled: true, Writer: &out, Level: slog.LevelDebug, JSON: true})
	Debug("built", "nodes", 3)
	require.Contains(t, out.String(), `"nodes":3`)
}

func TestDisabledAndOr(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var out bytes.Buffer
	Init(Options{Writer: &out})
	Warn("dropped")
	require.Zero(t, out.Len())

	custom := slog.New(slog.NewTextHandler(&out, nil))
	require.Same(t, custom, Or(custom))
	require.Same(t, L, Or(nil))
}
