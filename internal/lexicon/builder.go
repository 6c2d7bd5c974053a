package lexicon

import (
	"unicode/utf8"

	pstrings "augur/pkg/platform/strings"
)

// minWordLength is the shortest word, in letters, worth a slot in a clause.
const minWordLength = 4

// TaggedWord is one token of a part-of-speech tagged corpus.
type TaggedWord struct {
	Word string
	Tag  string
}

type vowelClass int

const (
	anyInitial vowelClass = iota
	vowelInitial
	consonantInitial
)

type rule struct {
	tags  []string
	class vowelClass
}

// rules maps each category to its Penn Treebank tags and initial-letter class.
var rules = map[Category]rule{
	NounSingularVowel:     {tags: []string{"NN", "NNP"}, class: vowelInitial},
	NounSingularConsonant: {tags: []string{"NN", "NNP"}, class: consonantInitial},
	NounPlural:            {tags: []string{"NNS", "NNPS"}},
	AdjectiveVowel:        {tags: []string{"JJ"}, class: vowelInitial},
	AdjectiveConsonant:    {tags: []string{"JJ"}, class: consonantInitial},
	VerbSingular:          {tags: []string{"VBZ"}},
	VerbPlural:            {tags: []string{"VBP", "VB"}},
}

// Build derives a lexicon from a tagged corpus. Words must be alphabetic, at
// least four letters long and not stopwords; they are lowercased and
// de-duplicated. Adverbs are always DefaultAdverbs.
func Build(corpus []TaggedWord, stop Stopwords) *Lexicon {
	byTag := make(map[string][]string)
	for _, tw := range corpus {
		byTag[tw.Tag] = append(byTag[tw.Tag], tw.Word)
	}

	words := make(map[Category][]string, len(Categories))
	for c, r := range rules {
		var candidates []string
		for _, tag := range r.tags {
			candidates = append(candidates, byTag[tag]...)
		}
		words[c] = normalize(c, candidates, stop)
	}
	words[Adverb] = DefaultAdverbs
	return New(words)
}

// normalize lowercases and de-duplicates words, keeping only those fit for c.
func normalize(c Category, words []string, stop Stopwords) []string {
	return pstrings.DedupeAndTrimLowerFunc(words, func(w string) bool {
		return fits(c, w, stop)
	})
}

// fits reports whether the lowercase word w may fill a c slot: alphabetic,
// at least four letters, not a stopword and of the category's initial-letter
// class. Categories without a rule, such as Adv, accept any word.
func fits(c Category, w string, stop Stopwords) bool {
	r, ok := rules[c]
	if !ok {
		return true
	}
	return pstrings.IsAlpha(w) &&
		utf8.RuneCountInString(w) >= minWordLength &&
		!stop.Contains(w) &&
		r.class.matches(w)
}

func (c vowelClass) matches(w string) bool {
	switch c {
	case vowelInitial:
		return StartsWithVowel(w)
	case consonantInitial:
		return !StartsWithVowel(w)
	default:
		return true
	}
}

// StartsWithVowel reports whether the lowercase word w begins with a, e, i, o or u.
func StartsWithVowel(w string) bool {
	if w == "" {
		return false
	}
	switch w[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
