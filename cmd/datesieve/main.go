// Command datesieve finds and normalizes dates in text from arguments or stdin
package main

import (
	"os"

	perr "datesieve/internal/platform/errors"
	"datesieve/internal/platform/logger"
)

func main() {
	// stdout carries results
	logger.Init(logger.FromEnv(logger.Options{Service: "datesieve", Level: "warn", Writer: os.Stderr}))

	if err := newRootCmd().Execute(); err != nil {
		if perr.IsCode(err, perr.ErrorCodeNoMatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
