// Package lexicon holds the categorized word lists the clause grammar draws
// from. A Lexicon is built once at startup and is read-only afterwards.
package lexicon

import "slices"

// Category names one grammatical word class.
type Category string

const (
	NounSingularVowel     Category = "N_sg_v"
	NounSingularConsonant Category = "N_sg_c"
	NounPlural            Category = "N_pl"
	AdjectiveVowel        Category = "Adj_v"
	AdjectiveConsonant    Category = "Adj_c"
	VerbSingular          Category = "V_sg"
	VerbPlural            Category = "V_pl"
	Adverb                Category = "Adv"
)

// Categories lists every category the grammar uses.
var Categories = []Category{
	NounSingularVowel,
	NounSingularConsonant,
	NounPlural,
	AdjectiveVowel,
	AdjectiveConsonant,
	VerbSingular,
	VerbPlural,
	Adverb,
}

// DefaultAdverbs is the fixed adverb list appended to every clause.
var DefaultAdverbs = []string{
	"ceaselessly", "eternally", "blindly", "utterly",
	"solemnly", "precisely", "silently", "purely",
}

// Lexicon maps categories to de-duplicated word lists.
type Lexicon struct {
	words map[Category][]string
}

// New builds a lexicon from words. The input is copied; unknown categories
// are kept but never read by the grammar.
func New(words map[Category][]string) *Lexicon {
	l := &Lexicon{words: make(map[Category][]string, len(words))}
	for c, ws := range words {
		l.words[c] = slices.Clone(ws)
	}
	return l
}

// Empty returns a lexicon with only the default adverbs.
func Empty() *Lexicon {
	return New(map[Category][]string{Adverb: DefaultAdverbs})
}

// Words returns the words of c. Callers must not modify the slice.
func (l *Lexicon) Words(c Category) []string {
	return l.words[c]
}

// Len returns the number of words in c.
func (l *Lexicon) Len(c Category) int {
	return len(l.words[c])
}

// Sizes reports the word count of every known category.
func (l *Lexicon) Sizes() map[Category]int {
	sizes := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		sizes[c] = len(l.words[c])
	}
	return sizes
}
