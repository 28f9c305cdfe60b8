package moderation

import (
	"chat-relay/errors"
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks forbidden words in message bodies before they are persisted.
// Matching is done on a folded copy of the text: lower case, leet
// substitutions undone, punctuation spaces and symbols skipped. Masking is
// applied to the original runes so the body keeps its layout.
type Moderator struct {
	log     *slog.Logger
	machine *goahocorasick.Machine
	mask    rune
}

// folded is a text reduced for matching. At[i] is the index in the original
// runes of Runes[i].
type folded struct {
	Runes []rune
	At    []int
}

// NewModerator builds the automaton from words. Words made only of noise fold
// to nothing and are dropped.
func NewModerator(words []string, mask rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if f := fold([]rune(word)); len(f.Runes) > 0 {
			patterns = append(patterns, f.Runes)
		}
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("Moderation automaton built", "patterns", len(patterns))
	return &Moderator{log: log, machine: machine, mask: mask}, nil
}

// Censor returns body with every match masked and the matched words in order
// of appearance.
func (m *Moderator) Censor(body string) (string, []string) {
	runes := []rune(body)
	f := fold(runes)
	if len(f.Runes) == 0 {
		return body, nil
	}
	terms := m.machine.MultiPatternSearch(f.Runes, false)
	if len(terms) == 0 {
		return body, nil
	}

	words := make([]string, 0, len(terms))
	for _, term := range terms {
		end := term.Pos + len(term.Word)
		if term.Pos < 0 || end > len(f.At) {
			continue
		}
		// noise between the first and last matched rune is masked too
		for i := f.At[term.Pos]; i <= f.At[end-1]; i++ {
			runes[i] = m.mask
		}
		words = append(words, string(term.Word))
	}
	return string(runes), words
}

func fold(runes []rune) folded {
	f := folded{Runes: make([]rune, 0, len(runes)), At: make([]int, 0, len(runes))}
	for i, r := range runes {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		f.Runes = append(f.Runes, unicode.ToLower(r))
		f.At = append(f.At, i)
	}
	return f
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	}
	return r
}
