// SPDX-License-Identifier: MIT

// Command linalg evaluates matrix and vector expressions from the command
// line. Matrices are written inline as "1,2;3,4" (rows split by ';'),
// vectors as "1,2,3".
//
//	linalg invert "4,7;2,6"
//	linalg mul "1,2;3,4" "5,6;7,8" --pretty
//	linalg scale "1,10;2,20;3,30" --lower 0 --upper 1
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
