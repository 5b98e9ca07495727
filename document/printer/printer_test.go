package printer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/zdoc/pkg/types"
)

type tnode struct {
	name, ty string
	args     []types.Arg
	children []*tnode
}

func (n *tnode) Name() string               { return n.name }
func (n *tnode) Type() string               { return n.ty }
func (n *tnode) NumArgs() int               { return len(n.args) }
func (n *tnode) ArgAt(i int) types.Arg      { return n.args[i] }
func (n *tnode) NumChildren() int           { return len(n.children) }
func (n *tnode) ChildAt(i int) types.NodeRef { return n.children[i] }

func named(name string, v types.Value) types.Arg { return types.Arg{Name: name, Value: v} }
func unnamed(v types.Value) types.Arg          { return types.Arg{Value: v} }

func TestSprint(t *testing.T) {
	tests := []struct {
		name string
		node *tnode
		want string
	}{
		{"unit", &tnode{}, "()"},
		{"unit variant", &tnode{ty: "None"}, "None"},
		{"value variant", &tnode{ty: "Some", args: []types.Arg{unnamed(types.Int(5))}}, "Some(5)"},
		{"value", &tnode{args: []types.Arg{unnamed(types.String("x"))}}, `"x"`},
		{"seq", &tnode{args: []types.Arg{unnamed(types.Int(1)), unnamed(types.Int(2))}}, "[1, 2]"},
		{
			"struct",
			&tnode{args: []types.Arg{named("a", types.Int(1)), named("b", types.String("x"))}},
			`{"a": 1, "b": "x"}`,
		},
		{
			"named root",
			&tnode{name: "cfg", args: []types.Arg{named("a", types.Bool(true))}},
			`cfg = {"a": true}`,
		},
		{
			"nested variant",
			&tnode{children: []*tnode{{
				name: "inner",
				ty:   "Pt",
				args: []types.Arg{named("x", types.Int(1)), named("y", types.Int(2))},
			}}},
			`{"inner": Pt {"x": 1, "y": 2}}`,
		},
		{
			"mixed",
			&tnode{args: []types.Arg{unnamed(types.Null()), named("k", types.Uint(7))}},
			`{"": null, "k": 7}`,
		},
		{"binary", &tnode{args: []types.Arg{unnamed(types.Binary([]byte{1, 2, 3}))}}, "(3 bytes)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sprint(tt.node))
		})
	}
}

func TestPrintTree(t *testing.T) {
	root := &tnode{
		name: "cfg",
		ty:   "Config",
		args: []types.Arg{named("port", types.Int(8080))},
		children: []*tnode{
			{name: "tls", args: []types.Arg{unnamed(types.Bool(true))}},
			{args: []types.Arg{unnamed(types.Binary([]byte{0xde, 0xad}))}},
		},
	}

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Color = ColorNever
	require.NoError(t, New(&buf, opts).Print(root))

	want := strings.Join([]string{
		"cfg (Config) port=8080",
		"  tls true",
		"  - 0xdead",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrintTreeMaxDepth(t *testing.T) {
	root := &tnode{name: "a", children: []*tnode{{name: "b", children: []*tnode{{name: "c"}}}}}

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Color = ColorNever
	opts.MaxDepth = 2
	require.NoError(t, New(&buf, opts).Print(root))

	assert.Equal(t, "a\n  b\n    ... (1 children)\n", buf.String())
}

func TestPrintDebugMaxDepth(t *testing.T) {
	root := &tnode{children: []*tnode{{name: "b", args: []types.Arg{named("x", types.Int(1))}}}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatDebug, MaxDepth: 1, Color: ColorNever}).Print(root))
	assert.Equal(t, "{\"b\": ...}\n", buf.String())
}

func TestColorAlways(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Color = ColorAlways
	require.NoError(t, New(&buf, opts).Print(&tnode{name: "x"}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestColorAutoNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).Print(&tnode{name: "x"}))
	assert.Equal(t, "x\n", buf.String())
}

func TestBinaryToken(t *testing.T) {
	v := types.Binary([]byte{1, 2, 3})
	assert.Equal(t, "0x010203", token(v, 16).text)
	assert.Equal(t, "0x0102... (3 bytes)", token(v, 2).text)
	assert.Equal(t, "(3 bytes)", token(v, 0).text)
	assert.Equal(t, "(0 bytes)", token(types.Binary(nil), 16).text)
}

// ladder returns the first of n nodes where node i has children i+1 and i+2.
func ladder(n int) *tnode {
	nodes := make([]*tnode, n)
	for i := range nodes {
		nodes[i] = &tnode{name: fmt.Sprintf("n%d", i)}
	}
	for i, nd := range nodes {
		nd.children = nodes[i+1 : min(i+3, n)]
	}
	return nodes[0]
}

func TestSprintSharedChildrenIsBounded(t *testing.T) {
	out := Sprint(ladder(60))
	assert.Contains(t, out, "...")
	assert.Less(t, len(out), 64*DefaultMaxNodes)
}

func TestPrintTreeMaxNodes(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Color = ColorNever
	opts.MaxNodes = 10
	require.NoError(t, New(&buf, opts).Print(ladder(60)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "...", strings.TrimSpace(lines[10]))

	// The budget is per call.
	buf.Reset()
	p := New(&buf, opts)
	require.NoError(t, p.Print(ladder(3)))
	require.NoError(t, p.Print(ladder(3)))
	assert.NotContains(t, buf.String(), "...")
}

func TestPrintUnlimitedNodes(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Format: FormatDebug, MaxNodes: -1}
	require.NoError(t, New(&buf, opts).Print(ladder(6)))
	assert.NotContains(t, buf.String(), "...")
}
