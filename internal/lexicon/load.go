package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"augur/pkg/platform/sentinel"
)

// ReadYAML reads a pre-built lexicon: a mapping from category name to word
// list. Unknown categories are rejected. Words are filtered by the same rules
// Build applies, so a file cannot put "ancient" behind "a". A missing Adv
// entry falls back to DefaultAdverbs.
func ReadYAML(r io.Reader, stop Stopwords) (*Lexicon, error) {
	var raw map[string][]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: decode lexicon: %v", sentinel.ErrBadData, err)
	}

	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	words := make(map[Category][]string, len(raw))
	for name, ws := range raw {
		c := Category(name)
		if !known[c] {
			return nil, fmt.Errorf("%w: unknown lexicon category %q", sentinel.ErrBadData, name)
		}
		words[c] = normalize(c, ws, stop)
	}
	if _, ok := words[Adverb]; !ok {
		words[Adverb] = DefaultAdverbs
	}
	return New(words), nil
}

// ReadCorpus reads a tagged corpus with one "word TAG" pair per line,
// separated by whitespace. Blank lines and # comments are skipped.
func ReadCorpus(r io.Reader) ([]TaggedWord, error) {
	var corpus []TaggedWord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: corpus line %d: want \"word TAG\", got %q", sentinel.ErrBadData, lineNo, line)
		}
		corpus = append(corpus, TaggedWord{Word: fields[0], Tag: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return corpus, nil
}

// Paths names the optional lexicon sources; LexiconPath wins over CorpusPath.
type Paths struct {
	LexiconPath   string
	CorpusPath    string
	StopwordsPath string
}

// Load builds the lexicon from whichever source is configured. With no source
// it returns Empty, so every content slot renders as the sentinel word.
func Load(p Paths) (*Lexicon, error) {
	if p.LexiconPath == "" && p.CorpusPath == "" {
		return Empty(), nil
	}

	stop := DefaultStopwords()
	if p.StopwordsPath != "" {
		sf, err := open(p.StopwordsPath)
		if err != nil {
			return nil, err
		}
		defer sf.Close()
		if stop, err = ReadStopwords(sf); err != nil {
			return nil, err
		}
	}

	switch {
	case p.LexiconPath != "":
		f, err := open(p.LexiconPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadYAML(f, stop)

	default:
		f, err := open(p.CorpusPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		corpus, err := ReadCorpus(f)
		if err != nil {
			return nil, err
		}
		return Build(corpus, stop), nil
	}
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sentinel.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
