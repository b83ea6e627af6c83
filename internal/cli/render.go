package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/relaylabs/relaylog/internal/format"
	"github.com/relaylabs/relaylog/internal/transcript"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Pretty-print a normalized transcript in the terminal",
	Long: `Parse a transcript and render it for reading: the Markdown view
through a terminal renderer, or a compact styled event listing.

Examples:
  relaylog render session.log
  relaylog render session.log --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var renderPlain bool

var (
	seqStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
	roleStyle = lipgloss.NewStyle().Bold(true)
	toolStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"})
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "Styled event listing instead of rendered Markdown")
}

func runRender(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	run := transcript.Validate(transcript.Enrich(transcript.Parse(string(input))))
	edges := transcript.Link(run)

	if renderPlain {
		renderListing(run, edges)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to build renderer: %w", err)
	}

	out, err := renderer.Render(format.Markdown(run, edges))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Print(out)
	return nil
}

func renderListing(run *transcript.Run, edges []transcript.Edge) {
	for _, ev := range run.Events {
		header := fmt.Sprintf("%s %s",
			seqStyle.Render(fmt.Sprintf("[%d]", ev.Seq)),
			roleStyle.Render(string(ev.Role)+" "+string(ev.Type)),
		)
		if ev.ToolName != "" {
			header += " " + toolStyle.Render(ev.ToolName)
		}
		if ev.Time != "" {
			header += " " + seqStyle.Render(ev.Time)
		}
		fmt.Println(header)
		if ev.Text != "" {
			fmt.Println(ev.Text)
		}
		fmt.Println()
	}

	if len(edges) > 0 {
		fmt.Println(roleStyle.Render("Causality"))
		for _, e := range edges {
			fmt.Printf("  %d (%s) -> %d (%s)\n", e.From, e.FromType, e.To, e.ToType)
		}
	}

	for _, w := range run.Warnings {
		fmt.Println(warnStyle.Render("warning: " + w))
	}
}
