package service

import (
	"context"
	"strings"

	"augur/internal/lexicon"
	"augur/internal/oracle/models"
)

const (
	rollLimit = 100
	// conjunctionThreshold is the roll below which a thought gets a second
	// clause.
	conjunctionThreshold = 30
)

var (
	leads        = []string{"a", "an", "the", "thy", "thou"}
	conjunctions = []string{"because", "yet", "as", "while", "for", "though"}
)

// Grammar renders clauses from a lexicon, drawing every choice from drawer.
type Grammar struct {
	lexicon *lexicon.Lexicon
	drawer  Drawer
	// singular holds consonant-initial singular nouns followed by
	// vowel-initial ones.
	singular []string
}

func NewGrammar(lex *lexicon.Lexicon, drawer Drawer) *Grammar {
	singular := make([]string, 0, lex.Len(lexicon.NounSingularConsonant)+lex.Len(lexicon.NounSingularVowel))
	singular = append(singular, lex.Words(lexicon.NounSingularConsonant)...)
	singular = append(singular, lex.Words(lexicon.NounSingularVowel)...)
	return &Grammar{
		lexicon:  lex,
		drawer:   drawer,
		singular: singular,
	}
}

// Clause renders one clause:
//
//	an    Adj_v N_sg_v V_sg Adv
//	a     Adj_c N_sg_c V_sg Adv
//	the   N_pl V_pl Adv | N_sg V_sg Adv
//	thy   (as the)
//	thou  V_pl Adv
func (g *Grammar) Clause(ctx context.Context) string {
	lead := leads[g.drawer.Draw(ctx, len(leads)).Index]
	words := []string{lead}

	switch lead {
	case "an":
		words = append(words,
			g.pick(ctx, g.lexicon.Words(lexicon.AdjectiveVowel)),
			g.pick(ctx, g.lexicon.Words(lexicon.NounSingularVowel)),
			g.pick(ctx, g.lexicon.Words(lexicon.VerbSingular)),
		)
	case "a":
		words = append(words,
			g.pick(ctx, g.lexicon.Words(lexicon.AdjectiveConsonant)),
			g.pick(ctx, g.lexicon.Words(lexicon.NounSingularConsonant)),
			g.pick(ctx, g.lexicon.Words(lexicon.VerbSingular)),
		)
	case "the", "thy":
		if g.drawer.Draw(ctx, 2).Index == 0 {
			words = append(words,
				g.pick(ctx, g.lexicon.Words(lexicon.NounPlural)),
				g.pick(ctx, g.lexicon.Words(lexicon.VerbPlural)),
			)
		} else {
			words = append(words,
				g.pick(ctx, g.singular),
				g.pick(ctx, g.lexicon.Words(lexicon.VerbSingular)),
			)
		}
	case "thou":
		words = append(words, g.pick(ctx, g.lexicon.Words(lexicon.VerbPlural)))
	}

	words = append(words, g.pick(ctx, g.lexicon.Words(lexicon.Adverb)))
	return strings.Join(words, " ")
}

// Compose rolls once, renders a clause and, on a low roll, joins a second
// clause with a drawn conjunction. The thought carries the roll's provenance.
func (g *Grammar) Compose(ctx context.Context) models.Thought {
	roll := g.drawer.Draw(ctx, rollLimit)
	parts := []string{g.Clause(ctx)}
	if roll.Index < conjunctionThreshold {
		parts = append(parts, g.pick(ctx, conjunctions), g.Clause(ctx))
	}
	return models.Thought{
		Message: strings.Join(parts, " "),
		Source:  roll.Provenance,
	}
}

func (g *Grammar) pick(ctx context.Context, words []string) string {
	if len(words) == 0 {
		return models.VoidWord
	}
	return words[g.drawer.Draw(ctx, len(words)).Index]
}
