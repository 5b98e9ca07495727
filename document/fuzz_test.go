package document_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/document/builder"
	"github.com/joshuapare/zdoc/document/printer"
	"github.com/joshuapare/zdoc/document/walker"
	"github.com/joshuapare/zdoc/pkg/types"
)

// FuzzCheck feeds arbitrary bytes to FromBytes. Rejections must be
// validation errors; accepted documents must be fully readable.
func FuzzCheck(f *testing.F) {
	f.Add([]byte{})
	f.Add(build(f, func(n *builder.Node) { n.SetName("root") }).Bytes())
	f.Add(build(f, func(n *builder.Node) {
		n.SetType("T").
			PushNamedArg("s", types.String("héllo")).
			PushUnnamedArg(types.Binary([]byte{1, 2, 3})).
			PushNamedWith("c", func(c *builder.Node) {
				c.PushUnnamedArg(types.Float(2.5)).PushUnnamedArg(types.Null())
			})
	}).Bytes())

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := document.FromBytes(data)
		if err != nil {
			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		for i := 0; i < doc.NumNodes(); i++ {
			n := doc.Node(i)
			_ = n.Name() + n.Type()
			for j := 0; j < n.Args().Len(); j++ {
				_ = n.Args().At(j).Value.String()
			}
		}
		// Overlapping children ranges make the tree a DAG, so only the unique
		// walk is linear in the input.
		err = walker.New(doc, walker.Options{Unique: true}).Walk(context.Background(), func(n document.Node, _ int) error {
			_ = n.Classify()
			return nil
		})
		if err != nil {
			t.Fatalf("walk: %v", err)
		}
		if _, err := walker.Count(context.Background(), doc); err != nil {
			t.Fatalf("count: %v", err)
		}
		_ = printer.Sprint(doc.Root())
	})
}
