package main

import (
	"fmt"

	"deckofcards/internal/config"
	"deckofcards/pkg/deck"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Instance()
	setupLogger(cfg)

	hand, remainder, err := deck.NewHand(cfg.Deal.HandSize)
	if err != nil {
		logrus.WithError(err).Fatal("could not deal hand")
	}

	logrus.WithField("hash", hand.HashCode()).Infof("hand: %s", hand)
	logrus.WithField("cardsLeft", remainder.Len()).Infof("remainder: %s", remainder)

	if cfg.Deal.SaveFile == "" {
		return
	}

	if err := saveRemainder(cfg, remainder); err != nil {
		logrus.WithError(err).Fatal("could not save remainder")
	}
}

func saveRemainder(cfg config.Config, remainder deck.Deck) error {
	codec, err := cfg.Codec()
	if err != nil {
		return err
	}

	if err := saveAndVerify(cfg.Deal.SaveFile, codec, remainder); err != nil {
		return err
	}

	logrus.WithField("filename", cfg.Deal.SaveFile).WithField("encoding", cfg.Deal.Encoding).Info("saved remainder")
	return nil
}

// saveAndVerify saves the deck and reads it back, returning an error if the file does not match
func saveAndVerify(filename string, codec deck.Codec, d deck.Deck) error {
	if err := deck.SaveWithCodec(d, filename, codec); err != nil {
		return err
	}

	loaded, err := deck.LoadWithCodec(filename, codec)
	if err != nil {
		return err
	}

	if saved, got := d.HashCode(), loaded.HashCode(); saved != got {
		return fmt.Errorf("saved deck does not match: %s != %s", saved, got)
	}

	return nil
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
