// hebdate - Hebrew/Gregorian Date Converter
//
// hebdate reads free-form date text in both calendars at once and converts
// every reading through the hebcal.com converter API. Built to sit behind a
// launcher keyword and equally usable from a shell.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/guykh/hebdate/internal/cli"
	"github.com/guykh/hebdate/internal/log"
)

func main() {
	// Optional env file; absence is the normal case.
	_ = godotenv.Load()

	log.Configure(log.Config{})

	os.Exit(cli.Execute())
}
