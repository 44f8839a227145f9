package main

import (
	"fmt"
	"os"

	"github.com/endlessm/xdg-user-dirs/internal/cli"
	"github.com/endlessm/xdg-user-dirs/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
