package main

import (
	"os"

	"deckofcards/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
