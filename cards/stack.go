package cards

import (
	"fmt"
	"sort"
	"strings"
)

// Stack represents an ordered collection of cards. Insertion order is
// the order dealt; the dealer replaces discarded cards in place so
// indices stay meaningful between draws.
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// AddCard appends a card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// ReplaceAt swaps the card at index i for the given card.
// Out-of-range indices are ignored.
func (s Stack) ReplaceAt(i int, card Card) {
	if i < 0 || i >= len(s) {
		return
	}
	s[i] = card
}

// Contains reports whether the stack holds the given card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the stack
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// SortDescending returns a copy of the stack sorted from highest card
// to lowest under the total card order (rank first, then suit).
func (s Stack) SortDescending() Stack {
	out := s.Clone()
	sort.Slice(out, func(i, j int) bool {
		return out[j].Less(out[i])
	})
	return out
}

// String returns the space-separated shorthand of the stack
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// StackFromString parses a space-separated list of card shorthands,
// e.g. "As Kd 10♥ 2c 2s"
func StackFromString(s string) (Stack, error) {
	var stack Stack
	for _, part := range strings.Fields(s) {
		card, err := CardFromString(part)
		if err != nil {
			return nil, fmt.Errorf("parsing stack %q: %w", s, err)
		}
		stack.AddCard(card)
	}
	return stack, nil
}
