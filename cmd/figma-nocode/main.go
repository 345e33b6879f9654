package main

import (
	"fmt"
	"os"

	figmanocode "github.com/hellenic-development/figma-nocode"
	"github.com/hellenic-development/figma-nocode/pkg/blocks"
	"github.com/hellenic-development/figma-nocode/pkg/converter"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.2.0"

const defaultOutputFile = "./no-code-output.json"

var idStrategy string

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-nocode <input.json> [output.json]",
		Short: "Convert a Figma nodes export into a no-code block document",
		Long: "A tool that detects button groups in a Figma nodes export (JSON) and emits " +
			"a declarative block document consumable by a block-based application builder",
		Args: cobra.RangeArgs(1, 2),
		Run:  run,
	}

	rootCmd.Flags().StringVar(&idStrategy, "ids", "", `Block id strategy: "random" or "uuid" (default "random", or $FIGMA_NOCODE_IDS)`)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-nocode version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🧱 Figma No-Code Converter")
	cyan.Println("===========================")
	cyan.Println()

	// A .env file may supply defaults; flags and arguments win over it.
	godotenv.Load()

	inputFile := args[0]
	outputFile := defaultOutputFile
	if len(args) == 2 {
		outputFile = args[1]
	} else if env := os.Getenv("FIGMA_NOCODE_OUTPUT"); env != "" {
		outputFile = env
	}

	ids, err := resolveIDGenerator(idStrategy)
	if err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := figmanocode.Run(figmanocode.Options{
		InputPath: inputFile,
		IDs:       ids,
		Logger:    &cliLogger{},
	})
	if err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Display conversion stats.
	doc := result.Document
	cyan.Println("\n📊 Conversion Summary:")
	if result.FileName != "" {
		fmt.Printf("  • Source File: %s\n", result.FileName)
	}

	groups, buttons := 0, 0
	for _, block := range doc.Blocks {
		if bg, ok := block.Component.(blocks.ButtonGroupComponent); ok {
			groups++
			buttons += len(bg.Content.Options.Data)
		}
	}
	fmt.Printf("  • Button Groups: %d\n", groups)
	fmt.Printf("  • Buttons: %d\n", buttons)
	fmt.Printf("  • Blocks: %d (including root)\n", len(doc.Blocks))

	// Write the block document to file.
	green.Printf("\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, result.JSON, 0644); err != nil {
		red.Printf("✗\n")
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully converted design to %s\n\n", outputFile)
}

// resolveIDGenerator picks the id strategy from the flag, falling back to the
// FIGMA_NOCODE_IDS environment variable and then to random ids.
func resolveIDGenerator(strategy string) (converter.IDGenerator, error) {
	if strategy == "" {
		strategy = os.Getenv("FIGMA_NOCODE_IDS")
	}
	switch strategy {
	case "", "random":
		return converter.RandomIDs(), nil
	case "uuid":
		return converter.UUIDs(), nil
	default:
		return nil, fmt.Errorf("invalid id strategy %q (must be random or uuid)", strategy)
	}
}

// cliLogger implements figmanocode.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
