package hands

import (
	"sort"

	"showdown/cards"
)

// Evaluate classifies a hand into the best HandType any five of its
// cards can form.
//
// Fewer than five cards always classify as HighCard; with more than
// five, every five-card combination is evaluated and the strongest
// result wins. Evaluation never fails, never mutates its input, and
// does not depend on the order cards were dealt in.
func Evaluate(hand cards.Stack) HandType {
	if len(hand) < 5 {
		return HighCard
	}
	if len(hand) == 5 {
		return evaluateFive(hand)
	}

	best := HighCard
	for _, combo := range combinations(len(hand), 5) {
		five := make(cards.Stack, 5)
		for i, idx := range combo {
			five[i] = hand[idx]
		}
		if ht := evaluateFive(five); ht > best {
			best = ht
			if best == RoyalFlush {
				// Nothing ranks higher
				return best
			}
		}
	}
	return best
}

// evaluateFive classifies exactly five cards.
//
// The checks run in strict precedence order: several conditions can
// hold at once (a straight flush is both a straight and a flush), and
// the first match must be the strongest category.
func evaluateFive(hand cards.Stack) HandType {
	sorted := sortByRank(hand)

	flush := isFlush(sorted)
	straight := isStraight(sorted)
	profile := rankCountProfile(sorted)

	switch {
	case flush && straight && containsRank(sorted, cards.Ace) && containsRank(sorted, cards.King):
		return RoyalFlush
	case flush && straight:
		return StraightFlush
	case profileIs(profile, 4, 1):
		return FourOfAKind
	case profileIs(profile, 3, 2):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case profileIs(profile, 3, 1, 1):
		return ThreeOfAKind
	case profileIs(profile, 2, 2, 1):
		return TwoPair
	case profileIs(profile, 2, 1, 1, 1):
		return Pair
	default:
		return HighCard
	}
}

// sortByRank returns a copy of the hand sorted by rank ascending.
// Suits are left in whatever order they arrive in; they do not affect
// classification.
func sortByRank(hand cards.Stack) cards.Stack {
	sorted := hand.Clone()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

// isFlush checks if all cards are of the same suit
func isFlush(hand cards.Stack) bool {
	if len(hand) == 0 {
		return false
	}
	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return false
		}
	}
	return true
}

// isStraight checks if five cards form a run of consecutive ranks.
// The wheel (A-2-3-4-5) counts as a straight with the ace played low;
// everywhere else the ace keeps its high value and can only top a
// 10-J-Q-K-A run.
func isStraight(hand cards.Stack) bool {
	distinct := distinctRanks(hand)
	// Any pair, trip, or quad breaks run-contiguity
	if len(distinct) != 5 {
		return false
	}

	if isWheel(distinct) {
		return true
	}

	for i := 1; i < len(distinct); i++ {
		if distinct[i] != distinct[i-1]+1 {
			return false
		}
	}
	return true
}

// isWheel checks a sorted distinct-rank set for exactly A-2-3-4-5
func isWheel(distinct []cards.Rank) bool {
	wheel := []cards.Rank{cards.Two, cards.Three, cards.Four, cards.Five, cards.Ace}
	if len(distinct) != len(wheel) {
		return false
	}
	for i, r := range wheel {
		if distinct[i] != r {
			return false
		}
	}
	return true
}

// distinctRanks returns the distinct ranks in the hand, sorted ascending
func distinctRanks(hand cards.Stack) []cards.Rank {
	seen := make(map[cards.Rank]bool)
	var ranks []cards.Rank
	for _, card := range hand {
		if !seen[card.Rank] {
			seen[card.Rank] = true
			ranks = append(ranks, card.Rank)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// rankCountProfile returns the multiplicity of each distinct rank in
// the hand, sorted descending, e.g. a full house yields [3 2] and four
// of a kind yields [4 1].
func rankCountProfile(hand cards.Stack) []int {
	counts := make(map[cards.Rank]int)
	for _, card := range hand {
		counts[card.Rank]++
	}

	profile := make([]int, 0, len(counts))
	for _, n := range counts {
		profile = append(profile, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(profile)))
	return profile
}

// profileIs checks a rank-count profile against an expected shape
func profileIs(profile []int, want ...int) bool {
	if len(profile) != len(want) {
		return false
	}
	for i, n := range want {
		if profile[i] != n {
			return false
		}
	}
	return true
}

// containsRank reports whether any card in the hand has the given rank
func containsRank(hand cards.Stack, rank cards.Rank) bool {
	for _, card := range hand {
		if card.Rank == rank {
			return true
		}
	}
	return false
}

// combinations generates all k-element index combinations out of n
func combinations(n, k int) [][]int {
	if k > n {
		return nil
	}

	var result [][]int
	var combine func(int, []int)

	combine = func(start int, current []int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}

		for i := start; i < n; i++ {
			current = append(current, i)
			combine(i+1, current)
			current = current[:len(current)-1]
		}
	}

	combine(0, []int{})
	return result
}
