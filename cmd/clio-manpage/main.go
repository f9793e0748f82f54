package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/clio/internal/cli"
	"github.com/arthur-debert/clio/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CLIO",
		Section: "1",
		Source:  "clio " + version.Get().Version,
		Manual:  "clio manual",
	}

	// With a directory argument one page per command is written there;
	// otherwise the root page goes to standard output.
	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
