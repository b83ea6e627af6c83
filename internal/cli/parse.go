package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/relaylabs/relaylog/internal/format"
	"github.com/relaylabs/relaylog/internal/transcript"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Normalize a transcript and write the result",
	Long: `Parse a transcript from a file or stdin, run enrichment, validation
and causality linking, and write the normalized run.

Examples:
  relaylog parse session.log --format markdown
  cat session.log | relaylog parse --format json --output run.json
  relaylog parse messages.json --json-input`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var (
	parseFormat    string
	parseOutput    string
	parseJSONInput bool
)

var warnStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"})

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "Output format: json, markdown, text")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().BoolVar(&parseJSONInput, "json-input", false, "Treat the input as the JSON transcript format")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	run, edges, err := normalize(input, parseJSONInput)
	if err != nil {
		return err
	}

	for _, w := range run.Warnings {
		fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+w))
	}

	var rendered []byte
	switch parseFormat {
	case "json":
		rendered, err = format.IndentedJSON(run, edges)
		if err != nil {
			return err
		}
	case "markdown":
		rendered = []byte(format.Markdown(run, edges))
	case "text":
		rendered = []byte(format.Text(run))
	default:
		return fmt.Errorf("unsupported format: %s (use json, markdown or text)", parseFormat)
	}

	return writeOutput(parseOutput, rendered)
}

// normalize runs the text pipeline, or the plain JSON ingestion path when
// jsonInput is set. The JSON path applies no enrichment or validation.
func normalize(input []byte, jsonInput bool) (*transcript.Run, []transcript.Edge, error) {
	if jsonInput {
		run, err := transcript.ParseJSON(input)
		if err != nil {
			return nil, nil, err
		}
		return run, transcript.Link(run), nil
	}
	run := transcript.Validate(transcript.Enrich(transcript.Parse(string(input))))
	return run, transcript.Link(run), nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		input, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return input, nil
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return input, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
