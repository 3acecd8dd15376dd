package main

import (
	"fmt"
	"os"

	"github.com/brandguard/brandguard/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "brandguard:", err)
		os.Exit(1)
	}
}
