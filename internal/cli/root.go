package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relaylog",
	Short: "Normalize agent transcripts into typed event records",
	Long: `relaylog converts loosely structured, line-oriented transcripts of an
AI agent's execution (user turns, assistant thoughts, tool invocations,
tool results) into an ordered sequence of typed, cross-referenced events,
recovering gracefully from malformed or incomplete input.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
