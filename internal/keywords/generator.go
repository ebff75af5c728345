package keywords

import "github.com/cloudnationhq/cpu-keywords-mcp/internal/util"

// Options tunes the expansion pipeline
type Options struct {
	// StripSpaces adds a space-free copy of every keyword during the typo
	// stage ("sd 8gen3" -> "sd8gen3").
	StripSpaces bool
}

// Expansion is the result of expanding one CPU name
type Expansion struct {
	Name     string   `json:"name"`
	Info     CPUInfo  `json:"info"`
	Keywords []string `json:"keywords"`
}

// Generator expands CPU names into search keywords
type Generator struct {
	opts Options
}

// NewGenerator creates a generator with the given options
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Options returns the options the generator was built with
func (g *Generator) Options() Options {
	return g.opts
}

// Parse normalizes name and extracts its CPU info
func (g *Generator) Parse(name string) CPUInfo {
	return ParseCPUInfo(util.NormalizeName(name))
}

// Expand runs the full pipeline for one CPU name.
//
// The normalized, lower-cased name always comes first, followed by the brand
// patterns, their typos and finally the abbreviations. Unrecognized brands
// yield only the normalized name.
func (g *Generator) Expand(name string) Expansion {
	normalized := util.NormalizeName(name)
	info := ParseCPUInfo(normalized)

	set := NewOrderedSet()
	addKeyword(set, normalized)
	addSearchPatterns(set, info)
	addTypos(set, g.opts)
	addAbbreviations(set, info)

	return Expansion{
		Name:     normalized,
		Info:     info,
		Keywords: set.Slice(),
	}
}

// Generate returns the keywords for one CPU name
func (g *Generator) Generate(name string) []string {
	return g.Expand(name).Keywords
}

var defaultGenerator = NewGenerator(Options{})

// GenerateCPUKeywords expands name with the default options
func GenerateCPUKeywords(name string) []string {
	return defaultGenerator.Generate(name)
}
