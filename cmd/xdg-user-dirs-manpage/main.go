package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/endlessm/xdg-user-dirs/internal/cli"
	"github.com/endlessm/xdg-user-dirs/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "XDG-USER-DIRS-UPDATE",
		Section: "1",
		Source:  "xdg-user-dirs " + version.Version,
		Manual:  "User Commands",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
