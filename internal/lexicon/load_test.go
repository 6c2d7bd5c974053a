package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augur/pkg/platform/sentinel"
)

func TestReadYAML(t *testing.T) {
	t.Run("categories and default adverbs", func(t *testing.T) {
		src := `
N_sg_c: [house, House, river]
Adj_c: [great]
V_sg: [stands]
`
		lex, err := ReadYAML(strings.NewReader(src), DefaultStopwords())
		require.NoError(t, err)
		assert.Equal(t, []string{"house", "river"}, lex.Words(NounSingularConsonant))
		assert.Equal(t, []string{"great"}, lex.Words(AdjectiveConsonant))
		assert.Equal(t, DefaultAdverbs, lex.Words(Adverb))
		assert.Zero(t, lex.Len(NounPlural))
	})

	t.Run("explicit adverbs override defaults", func(t *testing.T) {
		lex, err := ReadYAML(strings.NewReader("Adv: [softly]\n"), DefaultStopwords())
		require.NoError(t, err)
		assert.Equal(t, []string{"softly"}, lex.Words(Adverb))
	})

	t.Run("empty document", func(t *testing.T) {
		lex, err := ReadYAML(strings.NewReader(""), nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultAdverbs, lex.Words(Adverb))
	})

	t.Run("words are held to the builder rules", func(t *testing.T) {
		src := `
Adj_c: [ancient, the]
Adj_v: [great, ancient]
N_sg_c: [owl, x-ray, house]
V_sg: [is, stands]
`
		lex, err := ReadYAML(strings.NewReader(src), DefaultStopwords())
		require.NoError(t, err)
		assert.Empty(t, lex.Words(AdjectiveConsonant))
		assert.Equal(t, []string{"ancient"}, lex.Words(AdjectiveVowel))
		assert.Equal(t, []string{"house"}, lex.Words(NounSingularConsonant))
		assert.Equal(t, []string{"stands"}, lex.Words(VerbSingular))
	})

	t.Run("custom stopwords apply", func(t *testing.T) {
		lex, err := ReadYAML(strings.NewReader("N_pl: [rivers, lakes]\n"), NewStopwords("lakes"))
		require.NoError(t, err)
		assert.Equal(t, []string{"rivers"}, lex.Words(NounPlural))
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("Pronoun: [thee]\n"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sentinel.ErrBadData))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("N_pl: {a: [\n"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sentinel.ErrBadData))
	})
}

func TestReadCorpus(t *testing.T) {
	src := "# tagged\nhouse\tNN\n\n  rivers NNS  \n"
	corpus, err := ReadCorpus(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []TaggedWord{{"house", "NN"}, {"rivers", "NNS"}}, corpus)

	_, err = ReadCorpus(strings.NewReader("house\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel.ErrBadData))
}

func TestReadStopwords(t *testing.T) {
	stop, err := ReadStopwords(strings.NewReader("# list\nThe\n\nhouse\n"))
	require.NoError(t, err)
	assert.True(t, stop.Contains("the"))
	assert.True(t, stop.Contains("house"))
	assert.False(t, stop.Contains("river"))
	assert.Len(t, stop, 2)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}

	t.Run("no source yields empty lexicon", func(t *testing.T) {
		lex, err := Load(Paths{})
		require.NoError(t, err)
		assert.Zero(t, lex.Len(NounPlural))
		assert.Equal(t, DefaultAdverbs, lex.Words(Adverb))
	})

	t.Run("lexicon file wins over corpus", func(t *testing.T) {
		lexPath := write("lexicon.yaml", "N_pl: [owls]\n")
		corpusPath := write("corpus.txt", "rivers NNS\n")
		lex, err := Load(Paths{LexiconPath: lexPath, CorpusPath: corpusPath})
		require.NoError(t, err)
		assert.Equal(t, []string{"owls"}, lex.Words(NounPlural))
	})

	t.Run("lexicon file with custom stopwords", func(t *testing.T) {
		lexPath := write("lexicon2.yaml", "N_pl: [owls, ravens]\n")
		stopPath := write("stop2.txt", "ravens\n")
		lex, err := Load(Paths{LexiconPath: lexPath, StopwordsPath: stopPath})
		require.NoError(t, err)
		assert.Equal(t, []string{"owls"}, lex.Words(NounPlural))
	})

	t.Run("corpus with custom stopwords", func(t *testing.T) {
		corpusPath := write("corpus2.txt", "rivers NNS\nlakes NNS\n")
		stopPath := write("stop.txt", "lakes\n")
		lex, err := Load(Paths{CorpusPath: corpusPath, StopwordsPath: stopPath})
		require.NoError(t, err)
		assert.Equal(t, []string{"rivers"}, lex.Words(NounPlural))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Paths{LexiconPath: filepath.Join(dir, "absent.yaml")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})
}

func TestLexicon_Sizes(t *testing.T) {
	lex := New(map[Category][]string{NounPlural: {"owls", "rivers"}})
	sizes := lex.Sizes()
	assert.Equal(t, 2, sizes[NounPlural])
	assert.Equal(t, 0, sizes[Adverb])
	assert.Len(t, sizes, len(Categories))
}
