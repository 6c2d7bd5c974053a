package lexicon

import (
	"bufio"
	"fmt"
	"io"

	pstrings "augur/pkg/platform/strings"
)

// Stopwords is a set of lowercase words excluded from the lexicon.
type Stopwords map[string]struct{}

// Contains reports whether w is a stopword. A nil set contains nothing.
func (s Stopwords) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// NewStopwords builds a set from words, lowercased and trimmed.
func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range pstrings.DedupeAndTrimLower(words) {
		s[w] = struct{}{}
	}
	return s
}

// ReadStopwords reads one stopword per line. Blank lines and lines starting
// with # are skipped.
func ReadStopwords(r io.Reader) (Stopwords, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return NewStopwords(words...), nil
}

// DefaultStopwords is the standard English stopword list.
func DefaultStopwords() Stopwords {
	return NewStopwords(englishStopwords...)
}

var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's",
	"its", "itself", "they", "them", "their", "theirs", "themselves", "what",
	"which", "who", "whom", "this", "that", "that'll", "these", "those", "am", "is",
	"are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
	"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn",
	"hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
	"mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn",
	"wouldn't",
}
