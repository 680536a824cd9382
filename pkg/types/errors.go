package types

import "errors"

// Extraction failures. Each is terminal for a single extraction call; the
// caller decides whether to skip the file, log it, or abort a batch.
var (
	// ErrMissingGrammar indicates the language has no grammar and is not
	// one of the whole-file types.
	ErrMissingGrammar = errors.New("no grammar for language")

	// ErrMissingQueryConfig indicates the language has a grammar but no
	// embedding query bundle. This is a registry configuration gap, not a
	// normal outcome.
	ErrMissingQueryConfig = errors.New("no embedding queries")

	// ErrParseFailure indicates the parser could not produce a syntax tree
	// for the content under the language's grammar.
	ErrParseFailure = errors.New("parsing failed")
)
