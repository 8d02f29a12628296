package factory

import (
	"math/rand"
	"strings"
)

var artifactSyllables = []string{
	"gi", "reh", "han", "do", "mee", "sak", "ein", "pol", "maat", "hen", "kid",
}

// ArtifactName joins between lo and hi-1 random syllables.
func ArtifactName(rng *rand.Rand, lo, hi int) string {
	if rng == nil || hi <= lo {
		return artifactSyllables[0] + artifactSyllables[1]
	}
	n := lo + rng.Intn(hi-lo)
	var b strings.Builder
	for range n {
		b.WriteString(artifactSyllables[rng.Intn(len(artifactSyllables))])
	}
	return b.String()
}

// ArtifactValue returns 250 times a multiplier in [1, 30).
func ArtifactValue(rng *rand.Rand) int {
	if rng == nil {
		return 250
	}
	return 250 * (1 + rng.Intn(29))
}
