package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/platform/tui"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Show a hello window",
	Long:  `Opens a single window with a greeting. Press any key to close it.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := tui.RunHello(runtimeConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
