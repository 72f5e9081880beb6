package table

import (
	"fmt"

	"github.com/google/uuid"

	"showdown/cards"
	"showdown/hands"
)

// Seat holds one player's cards at the table
type Seat struct {
	PlayerID string
	Hole     cards.Stack
}

// Dealer deals cards out of a shuffled deck and runs showdowns.
// It is the game-flow side of the house: the evaluator itself never
// sees the deck, only the card sequences the dealer hands it.
type Dealer struct {
	TableID string
	deck    cards.Stack
}

// NewDealer creates a dealer with a freshly shuffled 52-card deck
func NewDealer() *Dealer {
	return &Dealer{
		TableID: uuid.NewString(),
		deck:    cards.ShuffleCards(cards.NewDeck52()),
	}
}

// Remaining returns the number of undealt cards
func (d *Dealer) Remaining() int {
	return len(d.deck)
}

// DealHoleCards deals n cards to each listed player in turn
func (d *Dealer) DealHoleCards(playerIDs []string, n int) ([]Seat, error) {
	needed := len(playerIDs) * n
	if needed > len(d.deck) {
		return nil, fmt.Errorf("not enough cards: need %d, have %d", needed, len(d.deck))
	}

	seats := make([]Seat, len(playerIDs))
	for i, playerID := range playerIDs {
		var hole cards.Stack
		hole, d.deck = cards.DealCards(d.deck, n)
		seats[i] = Seat{PlayerID: playerID, Hole: hole}
	}
	return seats, nil
}

// DealCommunity deals n shared board cards
func (d *Dealer) DealCommunity(n int) (cards.Stack, error) {
	if n > len(d.deck) {
		return nil, fmt.Errorf("not enough cards: need %d, have %d", n, len(d.deck))
	}

	var community cards.Stack
	community, d.deck = cards.DealCards(d.deck, n)
	return community, nil
}

// ReplaceCard swaps the card at the given hole index for the next card
// off the deck. The discarded card does not return to the deck.
func (d *Dealer) ReplaceCard(seat *Seat, index int) error {
	if index < 0 || index >= len(seat.Hole) {
		return fmt.Errorf("hole card index %d out of range", index)
	}
	if len(d.deck) == 0 {
		return fmt.Errorf("deck is empty")
	}

	var card cards.Card
	card, d.deck = cards.DealCard(d.deck)
	seat.Hole.ReplaceAt(index, card)
	return nil
}

// ShowdownResult reports the outcome of a two-player showdown
type ShowdownResult struct {
	TableID   string
	WinnerID  string // empty on a tie
	Tie       bool
	HandTypes map[string]hands.HandType
}

// Showdown pits two seats against each other over a shared board.
// Each player's hand is their hole cards plus the community cards;
// hands are evaluated and compared pairwise.
func (d *Dealer) Showdown(a, b Seat, community cards.Stack) ShowdownResult {
	handA := append(a.Hole.Clone(), community...)
	handB := append(b.Hole.Clone(), community...)

	result := ShowdownResult{
		TableID: d.TableID,
		HandTypes: map[string]hands.HandType{
			a.PlayerID: hands.Evaluate(handA),
			b.PlayerID: hands.Evaluate(handB),
		},
	}

	switch hands.Compare(handA, handB) {
	case 1:
		result.WinnerID = a.PlayerID
	case -1:
		result.WinnerID = b.PlayerID
	default:
		result.Tie = true
	}
	return result
}
