package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand(os.LookupEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
