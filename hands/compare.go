package hands

import "showdown/cards"

// Compare orders two hands. Returns -1 if a is the weaker hand, 1 if
// it is the stronger, and 0 if the hands tie.
//
// Hands are compared by HandType first. Equal hand types fall back to
// comparing the hands' cards sorted descending under the total card
// order, position by position. This kicker comparison does not regroup
// cards by rank multiplicity first: it is exact for HighCard, Flush,
// and Straight hands, and an approximation for paired hands (e.g. two
// two-pair hands with different pair ranks but the same top card may
// not order the way full poker tie-break rules would).
func Compare(a, b cards.Stack) int {
	ta, tb := Evaluate(a), Evaluate(b)
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}

	sa := a.SortDescending()
	sb := b.SortDescending()
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if c := sa[i].Compare(sb[i]); c != 0 {
			return c
		}
	}
	return 0
}
