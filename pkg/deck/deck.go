package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"strings"

	"deckofcards/internal/rng"
)

// Deck represents an ordered collection of cards
// The first card is the next to be dealt.
type Deck []Card

// Hand is the cards dealt off the top of a deck
type Hand = Deck

var defaultGenerator rng.Generator = rng.Math{}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call Shuffle() to shuffle the cards
func New() Deck {
	cards := make(Deck, 0, len(Suits)*len(Values))
	for _, suit := range Suits {
		for _, value := range Values {
			cards = append(cards, NewCard(value, suit))
		}
	}

	return cards
}

// Shuffle returns a shuffled copy of the deck using the default random source
func Shuffle(d Deck) Deck {
	return ShuffleWith(d, defaultGenerator)
}

// ShuffleWith returns a shuffled copy of the deck using the supplied random source
func ShuffleWith(d Deck, gen rng.Generator) Deck {
	cards := d.Clone()
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}

	return cards
}

// Contains returns true if the deck has at least one copy of the card
func Contains(d Deck, card Card) bool {
	for _, c := range d {
		if c == card {
			return true
		}
	}

	return false
}

// Deal splits the deck into a hand of handSize cards and the remainder.
// If handSize is larger than the deck, the whole deck is dealt and the remainder is empty.
func Deal(d Deck, handSize int) (Hand, Deck, error) {
	if handSize < 0 {
		return nil, nil, HandSizeError{Got: handSize}
	}

	if handSize > len(d) {
		handSize = len(d)
	}

	return d[:handSize].Clone(), d[handSize:].Clone(), nil
}

// NewHand will deal a hand of handSize cards from a freshly shuffled deck
func NewHand(handSize int) (Hand, Deck, error) {
	return Deal(Shuffle(New()), handSize)
}

// Clone returns a copy of the deck
func (d Deck) Clone() Deck {
	d2 := make(Deck, len(d))
	copy(d2, d)

	return d2
}

// Len returns the number of cards in the deck
func (d Deck) Len() int {
	return len(d)
}

func (d Deck) String() string {
	s := make([]string, len(d))
	for i, card := range d {
		s[i] = string(card)
	}

	return strings.Join(s, ", ")
}

// HashCode returns a SHA1 hash code of the deck.
func (d Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d {
		_, _ = hash.Write([]byte(card))
		_, _ = hash.Write([]byte{0})
	}

	return hex.EncodeToString(hash.Sum(nil))
}
