// Interactive encryption shell
package main

import (
	"fmt"
	"os"

	"github.com/xitonix/xgrid/cmd"
	"golang.org/x/term"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	shell := cmd.NewShell(os.Stdin, os.Stdout, interactive)
	if err := cmd.Run(shell); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
