package extractor

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/semcode/chunker/pkg/language"
	"github.com/semcode/chunker/pkg/types"
)

// Prompt templates. Downstream embedding consumers depend on the exact
// wording and structure, including the substitution order: path, then
// language, then item.
const (
	codeContextTemplate = "The below code snippet is from file '<path>'\n\n```<language>\n<item>\n```"
	entireFileTemplate  = "The below snippet is from file '<path>'\n\n```<language>\n<item>\n```"
)

// ParseableEntireFileTypes lists the language display names that are always
// extracted as a single whole-file chunk, even when a structural query
// exists for them. Checked before any structural attempt.
var ParseableEntireFileTypes = [4]string{"TOML", "YAML", "JSON", "CSS"}

// IsEntireFileType reports whether name is one of ParseableEntireFileTypes.
func IsEntireFileType(name string) bool {
	for _, t := range ParseableEntireFileTypes {
		if t == name {
			return true
		}
	}
	return false
}

// Extractor produces embeddable chunks from source files. It owns a parser
// and a query cursor that are reused across calls but carry no information
// between them. An Extractor is not safe for concurrent use; give each
// worker its own instance or serialize access.
type Extractor struct {
	parser *sitter.Parser
	cursor *sitter.QueryCursor
}

// New creates an Extractor with fresh parser and query-cursor handles.
func New() *Extractor {
	return &Extractor{
		parser: sitter.NewParser(),
		cursor: sitter.NewQueryCursor(),
	}
}

// captureKind classifies a query capture against a language's embedding
// config.
type captureKind int

const (
	captureOther captureKind = iota
	captureItem
	captureName
	captureContext
)

func classifyCapture(cfg *language.EmbeddingConfig, ix uint32) captureKind {
	switch {
	case ix == cfg.ItemCaptureIx:
		return captureItem
	case ix == cfg.NameCaptureIx:
		return captureName
	case cfg.ContextCaptureIx != nil && ix == *cfg.ContextCaptureIx:
		return captureContext
	default:
		return captureOther
	}
}

// Extract turns a file's content into embeddable chunks, in match-encounter
// order. Languages in ParseableEntireFileTypes become a single whole-file
// chunk; everything else runs the language's embedding query against a
// parsed syntax tree, reducing each match to at most one chunk.
//
// Matches lacking an item capture, or whose name captures were all consumed
// by earlier matches, are dropped silently; that is filtering, not failure.
// On error no chunks are returned.
func (e *Extractor) Extract(path string, content []byte, lang *language.Language) ([]types.Chunk, error) {
	if IsEntireFileType(lang.Name) {
		return e.extractEntireFile(path, lang.Name, content), nil
	}

	if lang.Grammar == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrMissingGrammar, lang.Name)
	}
	cfg := lang.EmbeddingConfig
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrMissingQueryConfig, lang.Name)
	}

	e.parser.SetLanguage(lang.Grammar)
	tree, err := e.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrParseFailure, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrParseFailure, lang.Name)
	}
	defer tree.Close()

	chunks := make([]types.Chunk, 0)

	// Name ranges consumed so far across the whole file. A name node shared
	// by overlapping matches is attributed to the first match that sees it.
	var nameRanges []types.ByteRange

	e.cursor.Exec(cfg.Query, tree.RootNode())
	for {
		match, ok := e.cursor.NextMatch()
		if !ok {
			break
		}

		var names []string
		var contexts []string
		var item string
		var itemRange types.ByteRange
		haveItem := false

		for _, capture := range match.Captures {
			r := nodeRange(capture.Node)
			switch classifyCapture(cfg, capture.Index) {
			case captureItem:
				// Last writer wins; queries yield at most one item per match.
				itemRange = r
				item, haveItem = sliceText(content, r)
			case captureName:
				if containsRange(nameRanges, r) {
					continue
				}
				nameRanges = append(nameRanges, r)
				if text, ok := sliceText(content, r); ok {
					names = append(names, text)
				}
			case captureContext:
				if text, ok := sliceText(content, r); ok {
					contexts = append(contexts, text)
				}
			}
		}

		if !haveItem || len(names) == 0 {
			continue
		}

		chunks = append(chunks, types.Chunk{
			Name:    strings.Join(names, " "),
			Range:   itemRange,
			Content: renderTemplate(codeContextTemplate, path, strings.ToLower(lang.Name), buildBody(contexts, item)),
		})
	}

	return chunks, nil
}

// extractEntireFile builds the single chunk used for file types that are
// not structurally decomposed. This path cannot fail.
func (e *Extractor) extractEntireFile(path, languageName string, content []byte) []types.Chunk {
	return []types.Chunk{{
		Name:    languageName,
		Range:   types.ByteRange{Start: 0, End: len(content)},
		Content: renderTemplate(entireFileTemplate, path, languageName, string(content)),
	}}
}

// buildBody prepends the context spans, one per line, to the item text.
func buildBody(contexts []string, item string) string {
	if len(contexts) == 0 {
		return item
	}
	return strings.Join(contexts, "\n") + "\n" + item
}

// renderTemplate substitutes the placeholder tokens in order: path, then
// language, then item.
func renderTemplate(template, path, languageName, item string) string {
	out := strings.ReplaceAll(template, "<path>", path)
	out = strings.ReplaceAll(out, "<language>", languageName)
	return strings.ReplaceAll(out, "<item>", item)
}

func nodeRange(node *sitter.Node) types.ByteRange {
	return types.ByteRange{Start: int(node.StartByte()), End: int(node.EndByte())}
}

// sliceText returns the content covered by r, rejecting out-of-bounds
// ranges rather than panicking.
func sliceText(content []byte, r types.ByteRange) (string, bool) {
	if r.Start < 0 || r.Start > r.End || r.End > len(content) {
		return "", false
	}
	return string(content[r.Start:r.End]), true
}

func containsRange(ranges []types.ByteRange, r types.ByteRange) bool {
	for _, seen := range ranges {
		if seen == r {
			return true
		}
	}
	return false
}
