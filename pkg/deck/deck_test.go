package deck

import (
	"errors"
	"sort"
	"testing"

	"deckofcards/internal/rng"
	"deckofcards/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func sorted(d Deck) []string {
	s := make([]string, len(d))
	for i, card := range d {
		s[i] = string(card)
	}

	sort.Strings(s)
	return s
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(20, d.Len())
	a.Equal(Card("Ace of Spades"), d[0])
	a.Equal(Card("Five of Spades"), d[4])
	a.Equal(Card("Ace of Clubs"), d[5])
	a.Equal(Card("Five of Diamonds"), d[19])

	seen := make(map[Card]bool)
	for _, card := range d {
		a.False(seen[card], "duplicate card %s", card)
		seen[card] = true
	}

	for _, suit := range Suits {
		for _, value := range Values {
			a.True(seen[NewCard(value, suit)])
		}
	}

	a.Equal(New().HashCode(), d.HashCode())
	snapshot.ValidateSnapshot(t, d, 0)
}

func TestShuffle(t *testing.T) {
	a := assert.New(t)
	d := New()
	original := d.Clone()

	shuffled := Shuffle(d)
	a.Equal(d.Len(), shuffled.Len())
	a.Equal(sorted(d), sorted(shuffled))
	a.Equal(original, d, "input must not be modified")

	a.Equal(Deck{}, Shuffle(Deck{}))
	a.Equal(Deck{"Ace of Spades"}, Shuffle(Deck{"Ace of Spades"}))
}

func TestShuffleWith(t *testing.T) {
	a := assert.New(t)

	d1 := ShuffleWith(New(), rng.NewSeeded(1))
	d2 := ShuffleWith(New(), rng.NewSeeded(1))
	a.Equal(d1, d2)
	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(New().HashCode(), d1.HashCode())

	d3 := ShuffleWith(New(), rng.Crypto{})
	a.Equal(sorted(New()), sorted(d3))
}

func TestShuffle_uniform(t *testing.T) {
	d := Deck{"a", "b", "c"}
	counts := make(map[string]int)
	for i := 0; i < 6000; i++ {
		counts[Shuffle(d).String()]++
	}

	assert.Len(t, counts, 6)
	for perm, n := range counts {
		// expected 1000 per permutation, sd ~29
		assert.InDelta(t, 1000, n, 200, perm)
	}
}

func TestContains(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.True(Contains(d, "Ace of Spades"))
	a.True(Contains(d, "Five of Diamonds"))
	a.False(Contains(d, "Six of Spades"))
	a.False(Contains(d, "ace of spades"))
	a.False(Contains(Deck{}, "Ace of Spades"))
	a.True(Contains(Deck{"x", "x"}, "x"))
}

func TestDeal(t *testing.T) {
	a := assert.New(t)

	hand, remainder, err := Deal(Deck{"Ace of Spades", "Two of Spades", "Three of Spades"}, 1)
	a.NoError(err)
	a.Equal(Hand{"Ace of Spades"}, hand)
	a.Equal(Deck{"Two of Spades", "Three of Spades"}, remainder)

	d := New()
	for n := 0; n <= d.Len(); n++ {
		hand, remainder, err := Deal(d, n)
		a.NoError(err)
		a.Equal(n, hand.Len())
		a.Equal(d.Len()-n, remainder.Len())
		a.Equal(d, append(hand, remainder...))
	}
}

func TestDeal_zero(t *testing.T) {
	hand, remainder, err := Deal(New(), 0)
	assert.NoError(t, err)
	assert.Equal(t, Hand{}, hand)
	assert.Equal(t, New(), remainder)
}

func TestDeal_overflow(t *testing.T) {
	d := Deck{"Ace of Spades", "Two of Spades"}
	hand, remainder, err := Deal(d, 5)
	assert.NoError(t, err)
	assert.Equal(t, d, hand)
	assert.Equal(t, Deck{}, remainder)

	hand, remainder, err = Deal(Deck{}, 1)
	assert.NoError(t, err)
	assert.Equal(t, Hand{}, hand)
	assert.Equal(t, Deck{}, remainder)
}

func TestDeal_negative(t *testing.T) {
	a := assert.New(t)

	hand, remainder, err := Deal(New(), -1)
	a.Nil(hand)
	a.Nil(remainder)
	a.True(errors.Is(err, ErrInvalidArgument))
	a.Equal(HandSizeError{Got: -1}, err)
	a.EqualError(err, "hand size must be >= 0, got -1")
}

func TestDeal_doesNotAlias(t *testing.T) {
	d := New()
	hand, remainder, err := Deal(d, 2)
	assert.NoError(t, err)

	hand[0] = "Joker"
	remainder[0] = "Joker"
	assert.Equal(t, New(), d)
}

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	hand, remainder, err := NewHand(5)
	a.NoError(err)
	a.Equal(5, hand.Len())
	a.Equal(15, remainder.Len())
	a.Equal(sorted(New()), sorted(append(hand, remainder...)))

	_, _, err = NewHand(-3)
	a.True(errors.Is(err, ErrInvalidArgument))

	hand, remainder, err = NewHand(25)
	a.NoError(err)
	a.Equal(20, hand.Len())
	a.Equal(0, remainder.Len())
}

func TestDeck_String(t *testing.T) {
	assert.Equal(t, "Ace of Spades, Two of Spades", Deck{"Ace of Spades", "Two of Spades"}.String())
	assert.Equal(t, "", Deck{}.String())
}

func TestDeck_HashCode(t *testing.T) {
	a := assert.New(t)
	a.Equal(Deck{"ab", "c"}.HashCode(), Deck{"ab", "c"}.HashCode())
	a.NotEqual(Deck{"ab", "c"}.HashCode(), Deck{"a", "bc"}.HashCode())
	a.NotEqual(Deck{"a", "b"}.HashCode(), Deck{"b", "a"}.HashCode())
	a.Len(Deck{}.HashCode(), 40)
}
