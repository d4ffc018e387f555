package main

import (
	"fmt"
	"os"

	"github.com/GregMSThompson/banks-directory/internal/clipboard"
)

func main() {
	if err := newRootCmd(clipboard.NewSystem()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
