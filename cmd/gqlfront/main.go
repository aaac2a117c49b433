package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gnoswap-labs/gqlfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrIssuesFound) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
