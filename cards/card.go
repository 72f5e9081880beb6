package cards

import (
	"fmt"
	"unicode/utf8"
)

// Rank represents a card rank, from Two (2) up to Ace (14).
// Ace is always high here; the hands package treats it as low
// only inside the A-2-3-4-5 straight.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// String returns the shorthand for a rank ("2"..."10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Suit represents a card suit. Suits carry a fixed order
// (Clubs < Diamonds < Hearts < Spades) used only to keep card
// sorting deterministic; it has no gameplay meaning.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are plain values: copying is
// free, equality is field equality, and they can be used as map keys.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the string representation of a card, e.g. "A♠"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Compare orders two cards by rank first, then by suit.
// Returns -1 if c is lower, 1 if higher, 0 if equal.
func (c Card) Compare(other Card) int {
	if c.Rank != other.Rank {
		if c.Rank < other.Rank {
			return -1
		}
		return 1
	}
	if c.Suit != other.Suit {
		if c.Suit < other.Suit {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c sorts before other under the total card order
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Rank: Ten, Suit: Spades}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// The suit symbol may be a multi-byte rune
	_, width := utf8.DecodeLastRuneInString(s)
	rankPart, suitPart := s[:len(s)-width], s[len(s)-width:]
	if rankPart == "" {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", suitPart)
	}

	var rank Rank
	switch rankPart {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %s", rankPart)
	}

	return Card{Rank: rank, Suit: suit}, nil
}
