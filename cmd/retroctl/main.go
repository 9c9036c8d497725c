package main

// Local tooling for the recommendation pipeline:
//   go run ./cmd/retroctl compose --pain-points "late reviews" --mood-note "tired"
//   go run ./cmd/retroctl parse reply.txt
//   go run ./cmd/retroctl recommend --pain-points "late reviews"

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "retroctl",
		Short:         "Work with retrospective recommendation prompts",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(composeCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(recommendCmd())
	return rootCmd
}
