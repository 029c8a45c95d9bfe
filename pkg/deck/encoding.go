package deck

import (
	"bytes"
	"encoding/binary"

	"gopkg.in/yaml.v2"
)

// Codec converts a deck to and from bytes
type Codec interface {
	Marshal(d Deck) ([]byte, error)
	Unmarshal(b []byte) (Deck, error)
}

const encodingVersion = 1

var binaryMagic = []byte("DECK")

// BinaryCodec encodes a deck as a magic header, a version byte, a card count, and
// length-prefixed card names. All integers are unsigned varints.
// Card bytes are stored as-is, so any string round-trips.
type BinaryCodec struct{}

// Marshal encodes the deck
func (BinaryCodec) Marshal(d Deck) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(binaryMagic)+1+binary.MaxVarintLen64))
	buf.Write(binaryMagic)
	buf.WriteByte(encodingVersion)

	varint := make([]byte, binary.MaxVarintLen64)
	buf.Write(varint[:binary.PutUvarint(varint, uint64(len(d)))])
	for _, card := range d {
		buf.Write(varint[:binary.PutUvarint(varint, uint64(len(card)))])
		buf.WriteString(string(card))
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes bytes written by Marshal
func (BinaryCodec) Unmarshal(b []byte) (Deck, error) {
	if len(b) < len(binaryMagic)+1 || !bytes.Equal(b[:len(binaryMagic)], binaryMagic) {
		return nil, decodeError("missing %q header", binaryMagic)
	}

	if v := b[len(binaryMagic)]; v != encodingVersion {
		return nil, decodeError("unsupported version %d", v)
	}

	b = b[len(binaryMagic)+1:]
	count, n := binary.Uvarint(b)
	if n <= 0 {
		return nil, decodeError("invalid card count")
	}
	b = b[n:]

	// every card needs at least its length byte
	if count > uint64(len(b)) {
		return nil, decodeError("card count %d exceeds input", count)
	}

	d := make(Deck, 0, count)
	for i := uint64(0); i < count; i++ {
		size, n := binary.Uvarint(b)
		if n <= 0 {
			return nil, decodeError("invalid length for card %d", i)
		}
		b = b[n:]

		if size > uint64(len(b)) {
			return nil, decodeError("card %d is truncated", i)
		}

		d = append(d, Card(b[:size]))
		b = b[size:]
	}

	if len(b) != 0 {
		return nil, decodeError("%d unexpected trailing bytes", len(b))
	}

	return d, nil
}

const yamlFormat = "deck"

type yamlDeck struct {
	Format  string   `yaml:"format"`
	Version int      `yaml:"version"`
	Cards   []string `yaml:"cards"`
}

// YAMLCodec encodes a deck as a YAML document
type YAMLCodec struct{}

// Marshal encodes the deck
func (YAMLCodec) Marshal(d Deck) ([]byte, error) {
	doc := yamlDeck{
		Format:  yamlFormat,
		Version: encodingVersion,
		Cards:   make([]string, len(d)),
	}

	for i, card := range d {
		doc.Cards[i] = string(card)
	}

	return yaml.Marshal(doc)
}

// Unmarshal decodes bytes written by Marshal
func (YAMLCodec) Unmarshal(b []byte) (Deck, error) {
	var doc yamlDeck
	if err := yaml.UnmarshalStrict(b, &doc); err != nil {
		return nil, decodeError("%v", err)
	}

	if doc.Format != yamlFormat {
		return nil, decodeError("unexpected format %q", doc.Format)
	}

	if doc.Version != encodingVersion {
		return nil, decodeError("unsupported version %d", doc.Version)
	}

	d := make(Deck, len(doc.Cards))
	for i, card := range doc.Cards {
		d[i] = Card(card)
	}

	return d, nil
}
