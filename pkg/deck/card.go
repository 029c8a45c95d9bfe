package deck

// Card is an individual playing card in the form of "<Value> of <Suit>"
type Card string

// Suits used to build the default deck, in deck order
var Suits = []string{"Spades", "Clubs", "Hearts", "Diamonds"}

// Values used to build the default deck, in deck order
var Values = []string{"Ace", "Two", "Three", "Four", "Five"}

// NewCard returns the card for the value and suit (i.e., "Ace of Spades")
func NewCard(value, suit string) Card {
	return Card(value + " of " + suit)
}

func (c Card) String() string {
	return string(c)
}
