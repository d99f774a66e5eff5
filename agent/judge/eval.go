// Package judge summarizes the strength of a validated hand: a made-hand
// description and a Monte-Carlo equity estimate against a random holding.
package judge

import (
	"errors"
	"math/rand"
	"time"

	poker "github.com/paulhankin/poker"

	"holdem-scribe/agent/game"
)

// toPH converts our card to the evaluation library's card.
// Our ranks are characters; the library counts Ace as 1.
func toPH(c game.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	default:
		s = poker.Spade
	}
	var r poker.Rank
	switch c.Rank {
	case 'A':
		r = poker.Rank(1)
	case 'K':
		r = poker.Rank(13)
	case 'Q':
		r = poker.Rank(12)
	case 'J':
		r = poker.Rank(11)
	case 'T':
		r = poker.Rank(10)
	default:
		r = poker.Rank(c.Rank - '0')
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// Describe names the best made hand for the user's hole cards plus board.
// It needs at least a full flop to say anything useful.
func Describe(st game.State) (string, error) {
	cards := st.AllCards()
	if len(cards) < 5 {
		return "", errors.New("need at least five known cards to describe a hand")
	}
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toPH(c)
	}
	return poker.Describe(pcs)
}

func fullDeck() []game.Card {
	deck := make([]game.Card, 0, 52)
	for _, suit := range []byte{'c', 'd', 'h', 's'} {
		for _, rank := range []byte("23456789TJQKA") {
			deck = append(deck, game.Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// EquityVsRandom estimates the user's equity against one uniformly random
// opponent hand, completing the board randomly each iteration.
// Equity counts ties as half a win. Seed 0 means non-deterministic.
func EquityVsRandom(st game.State, iters int, seed int64) (float64, error) {
	if len(st.UserHand) != 2 {
		return 0, errors.New("user hand must contain exactly 2 cards")
	}
	board := st.Board()
	if len(board) > 5 {
		return 0, errors.New("board has more than 5 cards")
	}
	if iters <= 0 {
		iters = 10000
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	used := make(map[game.Card]bool, 7)
	for _, c := range st.AllCards() {
		used[c] = true
	}
	avail := make([]game.Card, 0, 52)
	for _, c := range fullDeck() {
		if !used[c] {
			avail = append(avail, c)
		}
	}

	need := 5 - len(board)
	draw := need + 2
	var wins, ties int
	for it := 0; it < iters; it++ {
		// Partial Fisher-Yates: the first draw cards become the villain
		// hole and the board completion.
		for i := 0; i < draw; i++ {
			j := i + r.Intn(len(avail)-i)
			avail[i], avail[j] = avail[j], avail[i]
		}
		var hero, villain [7]poker.Card
		hero[0], hero[1] = toPH(st.UserHand[0]), toPH(st.UserHand[1])
		villain[0], villain[1] = toPH(avail[0]), toPH(avail[1])
		for i, c := range board {
			hero[2+i] = toPH(c)
			villain[2+i] = toPH(c)
		}
		for i := 0; i < need; i++ {
			hero[2+len(board)+i] = toPH(avail[2+i])
			villain[2+len(board)+i] = toPH(avail[2+i])
		}
		heroScore := poker.Eval7(&hero)
		villainScore := poker.Eval7(&villain)
		switch {
		case heroScore > villainScore:
			wins++
		case heroScore == villainScore:
			ties++
		}
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(iters), nil
}
