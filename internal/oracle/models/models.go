package models

import emodels "augur/internal/entropy/models"

// Thought is one generated sentence and the provenance of the roll that
// decided its shape.
type Thought struct {
	Message string
	Source  emodels.Provenance
}

// Token is one entry of the token library and the provenance of its draw.
type Token struct {
	Token  string
	Source emodels.Provenance
}

// VoidWord stands in for any word that could not be drawn.
const VoidWord = "void"
