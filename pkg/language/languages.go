package language

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
)

// Built-in embedding queries. Each query follows the @item/@name/@context
// capture convention: @item marks the declaration body to extract, @name the
// declared identifier, and @context an enclosing-scope node prepended to the
// body for disambiguation.

const goQuery = `
(function_declaration name: (identifier) @name) @item
(method_declaration name: (field_identifier) @name) @item
(type_declaration (type_spec name: (type_identifier) @name)) @item
`

const pythonQuery = `
(function_definition name: (identifier) @name) @item
(class_definition name: (identifier) @name) @item
`

const javascriptQuery = `
(function_declaration name: (identifier) @name) @item
(class_declaration name: (identifier) @name) @item
(class_declaration
  name: (identifier) @context
  body: (class_body (method_definition name: (property_identifier) @name) @item))
`

const typescriptQuery = `
(function_declaration name: (identifier) @name) @item
(class_declaration name: (type_identifier) @name) @item
(interface_declaration name: (type_identifier) @name) @item
(type_alias_declaration name: (type_identifier) @name) @item
(enum_declaration name: (identifier) @name) @item
(class_declaration
  name: (type_identifier) @context
  body: (class_body (method_definition name: (property_identifier) @name) @item))
`

const rustQuery = `
(function_item name: (identifier) @name) @item
(struct_item name: (type_identifier) @name) @item
(enum_item name: (type_identifier) @name) @item
(trait_item name: (type_identifier) @name) @item
(impl_item type: (type_identifier) @name) @item
(mod_item name: (identifier) @name) @item
(macro_definition name: (identifier) @name) @item
`

// DefaultRegistry returns a registry populated with the built-in languages.
//
// TOML, YAML, and CSS carry grammars but no embedding queries; the
// extractor's whole-file policy takes precedence for all of them anyway.
// JSON registers with no grammar at all.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()

	structural := []struct {
		name       string
		grammar    *sitter.Language
		query      string
		extensions []string
	}{
		{"Go", golang.GetLanguage(), goQuery, []string{"go"}},
		{"Python", python.GetLanguage(), pythonQuery, []string{"py", "pyi"}},
		{"JavaScript", javascript.GetLanguage(), javascriptQuery, []string{"js", "jsx", "mjs"}},
		{"TypeScript", typescript.GetLanguage(), typescriptQuery, []string{"ts"}},
		{"Rust", rust.GetLanguage(), rustQuery, []string{"rs"}},
	}

	for _, s := range structural {
		cfg, err := NewEmbeddingConfig(s.query, s.grammar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		r.Register(&Language{Name: s.name, Grammar: s.grammar, EmbeddingConfig: cfg}, s.extensions...)
	}

	r.Register(&Language{Name: "TOML", Grammar: toml.GetLanguage()}, "toml")
	r.Register(&Language{Name: "YAML", Grammar: yaml.GetLanguage()}, "yaml", "yml")
	r.Register(&Language{Name: "CSS", Grammar: css.GetLanguage()}, "css")
	r.Register(&Language{Name: "JSON"}, "json")

	return r, nil
}
