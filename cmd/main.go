package main

import (
	"flag"
	"os"
	"walletfx/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	once := flag.Bool("once", false, "fetch once, print the wallet to stdout and exit")
	flag.Parse()

	if *once {
		if err := app.RunOnce(os.Stdout); err != nil {
			logrus.WithError(err).Error("Wallet could not be loaded")
			os.Exit(1)
		}
		return
	}

	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped with error")
	}
}
