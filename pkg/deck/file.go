package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultCodec is the encoding used by Save and Load
var DefaultCodec Codec = BinaryCodec{}

// Save writes the deck to filename, overwriting any existing file.
// Concurrent saves to the same file are not coordinated; the last write wins.
func Save(d Deck, filename string) error {
	return SaveWithCodec(d, filename, DefaultCodec)
}

// SaveWithCodec writes the deck to filename using the codec
func SaveWithCodec(d Deck, filename string, codec Codec) error {
	b, err := codec.Marshal(d)
	if err != nil {
		return &SaveError{Filename: filename, Err: err}
	}

	if err := os.WriteFile(filename, b, 0644); err != nil { // nolint:gosec
		return &SaveError{Filename: filename, Err: err}
	}

	logrus.WithField("filename", filename).WithField("cards", len(d)).Debug("saved deck")
	return nil
}

// Load reads a deck previously written by Save
func Load(filename string) (Deck, error) {
	return LoadWithCodec(filename, DefaultCodec)
}

// LoadWithCodec reads a deck from filename using the codec
func LoadWithCodec(filename string, codec Codec) (Deck, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return nil, &LoadError{Filename: filename, Err: err}
	}

	d, err := codec.Unmarshal(b)
	if err != nil {
		logrus.WithError(err).WithField("filename", filename).Debug("could not decode deck")
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logrus.WithField("filename", filename).WithField("cards", len(d)).Debug("loaded deck")
	return d, nil
}
