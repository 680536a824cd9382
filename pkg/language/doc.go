// Package language maps language identifiers to grammars and embedding
// queries.
//
// A Language descriptor carries everything the extractor needs: a display
// name, an optional tree-sitter grammar, and an EmbeddingConfig holding the
// compiled structural query plus the resolved @item/@name/@context capture
// indices. The Registry resolves descriptors by display name or file
// extension:
//
//	reg, err := language.DefaultRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lang, ok := reg.ForPath("internal/service/user.go")
//	if !ok {
//	    // unknown extension; skip the file
//	}
//
// Custom languages register the same way the built-ins do:
//
//	cfg, err := language.NewEmbeddingConfig(query, grammar)
//	reg.Register(&language.Language{Name: "Zig", Grammar: grammar, EmbeddingConfig: cfg}, "zig")
package language
