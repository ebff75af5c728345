// Package parser reads the HCL vocabulary file that reserves brand and
// category names and seeds the CPU catalog.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Vocabulary is the parsed content of a vocabulary file
type Vocabulary struct {
	// Brands and Categories hold lower-cased block labels followed by their keywords.
	Brands     []string
	Categories []string
	// Catalog lists CPU names to index.
	Catalog []string
}

// VocabularyParser parses vocabulary files
type VocabularyParser struct {
	parser *hclparse.Parser
}

// NewVocabularyParser creates a new vocabulary parser
func NewVocabularyParser() *VocabularyParser {
	return &VocabularyParser{parser: hclparse.NewParser()}
}

// ParseFile reads and parses the vocabulary file at path
func (p *VocabularyParser) ParseFile(path string) (*Vocabulary, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}
	return p.Parse(src, path)
}

// Parse parses vocabulary source; filename is only used in diagnostics
func (p *VocabularyParser) Parse(src []byte, filename string) (*Vocabulary, error) {
	file, diags := p.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to parse %s: unexpected body type", filename)
	}

	vocab := &Vocabulary{}
	brands := newNameList()
	categories := newNameList()

	for _, block := range body.Blocks {
		switch block.Type {
		case "brand", "category":
			if len(block.Labels) != 1 {
				return nil, fmt.Errorf("%s: %s block needs exactly one label", block.DefRange(), block.Type)
			}
			names, err := p.blockNames(block)
			if err != nil {
				return nil, err
			}
			if block.Type == "brand" {
				brands.add(names...)
			} else {
				categories.add(names...)
			}
		default:
			return nil, fmt.Errorf("%s: unsupported block type %q", block.DefRange(), block.Type)
		}
	}

	if attr, exists := body.Attributes["catalog"]; exists {
		catalog, err := p.stringList(attr)
		if err != nil {
			return nil, err
		}
		vocab.Catalog = catalog
	}

	vocab.Brands = brands.values
	vocab.Categories = categories.values
	return vocab, nil
}

// ParseVocabulary is a shortcut for NewVocabularyParser().ParseFile(path)
func ParseVocabulary(path string) (*Vocabulary, error) {
	return NewVocabularyParser().ParseFile(path)
}

// blockNames returns the block label and its keywords, lower-cased
func (p *VocabularyParser) blockNames(block *hclsyntax.Block) ([]string, error) {
	names := []string{block.Labels[0]}

	if attr, exists := block.Body.Attributes["keywords"]; exists {
		keywords, err := p.stringList(attr)
		if err != nil {
			return nil, err
		}
		names = append(names, keywords...)
	}

	for i, n := range names {
		names[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return names, nil
}

// stringList evaluates a literal list attribute into Go strings
func (p *VocabularyParser) stringList(attr *hclsyntax.Attribute) ([]string, error) {
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s", attr.SrcRange, diags.Error())
	}

	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("%s: %s must be a list of strings", attr.SrcRange, attr.Name)
	}

	var out []string
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		s, err := ctyString(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", attr.SrcRange, attr.Name, err)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func ctyString(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("expected string, got %s", val.Type().FriendlyName())
	}
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return "", err
	}
	return s, nil
}

type nameList struct {
	seen   map[string]bool
	values []string
}

func newNameList() *nameList {
	return &nameList{seen: make(map[string]bool)}
}

func (l *nameList) add(names ...string) {
	for _, n := range names {
		if n == "" || l.seen[n] {
			continue
		}
		l.seen[n] = true
		l.values = append(l.values, n)
	}
}
