// Package extractor turns source files into embeddable chunks for a code
// search index.
//
// Each chunk is a self-contained text span — a declaration plus any
// enclosing-scope context — wrapped in a descriptive prompt template, along
// with the byte range it occupies in the original file. The range lets a
// downstream indexer detect stale chunks; the prompt is what gets embedded.
//
// # Basic Usage
//
//	reg, err := language.DefaultRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lang, _ := reg.ForPath("service.go")
//
//	ext := extractor.New()
//	chunks, err := ext.Extract("service.go", content, lang)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, chunk := range chunks {
//	    fmt.Printf("%s: bytes %d-%d\n", chunk.Name, chunk.Range.Start, chunk.Range.End)
//	}
//
// # Two Flows
//
// Flat configuration and markup formats (ParseableEntireFileTypes: TOML,
// YAML, JSON, CSS) are never decomposed; the whole file becomes one chunk
// named after the language. Every other language runs its embedding query
// over a parsed syntax tree. Each query match is reduced to at most one
// chunk: the @item capture supplies the body and byte range, @name captures
// supply the chunk name, and @context captures are prepended to the body.
//
// A name node shared by overlapping matches (a method name visible to both
// a method pattern and an enclosing class pattern) is credited only to the
// first match that yields it; later matches left without a surviving name
// produce no chunk.
//
// # Reuse and Concurrency
//
// An Extractor holds reusable parser and query-cursor handles so tree
// construction can recycle allocations across many files, but no semantic
// state survives a call. The handles make a single instance unsafe for
// concurrent use; create one Extractor per worker.
package extractor
