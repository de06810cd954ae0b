// Package moderation censors forbidden words in message texts before
// they reach the store.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	chaterr "bate-papo/errors"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton over a normalized copy
// of the forbidden word list. An empty list is an error: a moderator
// that censors nothing should not exist.
func NewModerator(forbidden []string, replacement rune) (*Moderator, error) {
	if len(forbidden) == 0 {
		return nil, chaterr.ErrEmptyWordList
	}
	patterns := make([][]rune, len(forbidden))
	for i, word := range forbidden {
		patterns[i] = foldRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every character of a matched word with the
// replacement rune, leaving spacing and punctuation intact. Matching is
// case-insensitive and ignores punctuation inserted inside words.
func (m *Moderator) Censor(text string) string {
	original := []rune(text)
	folded, origIdx := fold(original)
	if len(folded) == 0 {
		return text
	}

	hits := m.matcher.MultiPatternSearch(folded, false)
	if len(hits) == 0 {
		return text
	}

	for _, hit := range hits {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	return string(original)
}

// fold lowercases and strips noise runes, keeping a mapping from each
// folded position back to its index in the original text.
func fold(original []rune) ([]rune, []int) {
	folded := make([]rune, 0, len(original))
	origIdx := make([]int, 0, len(original))
	for i, r := range original {
		if isNoise(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return folded, origIdx
}

func foldRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
