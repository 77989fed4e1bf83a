package main

import (
	"fmt"
	"os"

	"chess-core/session"
)

func main() {
	s := session.New(os.Stdout)
	if err := s.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
}
