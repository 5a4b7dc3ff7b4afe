package main

import (
	"errors"
	"fmt"
	"os"

	raindrop "github.com/raindropctl/raindropctl"
	"github.com/joho/godotenv"
)

// Exit codes mapped from the error taxonomy so automated callers can branch
// without parsing error text.
const (
	exitFailure   = 1
	exitUsage     = 2
	exitAuth      = 3
	exitNotFound  = 4
	exitRateLimit = 5
	exitTransport = 6
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hint := raindrop.HintOf(err); hint != "" {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var vErr *raindrop.ValidationError
	if errors.As(err, &vErr) {
		return exitUsage
	}
	switch {
	case errors.Is(err, raindrop.ErrUnauthorized), errors.Is(err, raindrop.ErrMissingToken):
		return exitAuth
	case errors.Is(err, raindrop.ErrNotFound):
		return exitNotFound
	case errors.Is(err, raindrop.ErrRateLimited):
		return exitRateLimit
	}
	var tErr *raindrop.TimeoutError
	var nErr *raindrop.NetworkError
	if errors.As(err, &tErr) || errors.As(err, &nErr) {
		return exitTransport
	}
	return exitFailure
}
