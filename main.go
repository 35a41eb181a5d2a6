package main

import (
	"os"
	"ovis/cardmap/bootstrap"
	"ovis/cardmap/util"

	"github.com/akamensky/argparse"
)

func main() {
	parser := argparse.NewParser("cardmap", "FLP readout card discovery and configuration service")
	configFilename := parser.String("c", "config", &argparse.Options{
		Default: util.GetenvDefault("CARDMAP_CONFIG", "cardmap.conf"),
		Help:    "Configuration file path",
	})
	if err := parser.Parse(os.Args); err != nil {
		os.Exit(1)
	}
	bootstrap.Web(*configFilename)
}
