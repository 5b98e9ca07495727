// Package document provides validated, zero-copy access to zdoc documents.
//
// # Overview
//
// A zdoc document is a tree of nodes stored in one contiguous buffer:
//
//	[Header - 64B] [Nodes - 32B each] [Args - 20B each] [Strings] [Binary]
//
// Every node has an optional name, an optional type tag, an ordered list of
// arguments and an ordered list of children. Nodes, arguments and strings are
// addressed with (start, len) ranges relative to their section; the root is
// the node at the header's root index (0 for every document the builder
// produces). The zero-length buffer is the empty document.
//
// # Loading a Document
//
// FromBytes validates the whole buffer once (see package verify) and returns
// a Document that reads it without further bounds checks:
//
//	doc, err := document.FromBytes(data)
//	if err != nil {
//	    var verr *types.ValidationError
//	    if errors.As(err, &verr) {
//	        log.Printf("bad document at byte %d: %s", verr.Offset, verr.Kind)
//	    }
//	    return err
//	}
//
// Open memory-maps a file on Unix platforms and reads it into memory elsewhere:
//
//	doc, err := document.Open("config.zdoc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
// # Traversal
//
//	root := doc.Root()
//	port, ok := root.Get("port")        // arguments first, then children
//	server, _ := root.Children().ByName("server")
//	for i := 0; i < server.Args().Len(); i++ {
//	    arg := server.Args().At(i)
//	    fmt.Println(arg.Name, arg.Value)
//	}
//
// Lookups by name scan linearly and return the last match.
//
// # Lifetimes and Concurrency
//
// Strings and byte slices returned by a Document alias its buffer. The caller
// must not modify a buffer passed to FromBytes, and must not use values read
// from an opened Document after Close. A Document is immutable and safe for
// concurrent readers.
package document
