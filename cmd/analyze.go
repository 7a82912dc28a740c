package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/internal/msi"
	"github.com/msikit/msiscope/utils"
)

var (
	outputFormat    string
	useExamplePaths bool
	reportPath      string
)

// analysisResult pairs one input with its finished report.
type analysisResult struct {
	Source string
	Info   msi.PackageInfo
	Report *impact.Report
}

var analyzeCmd = &cobra.Command{
	Use:               "analyze [table-dump.json | package.msi]...",
	Short:             "Analyze the installation impact of MSI packages",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".json", ".msi"}),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		validFormats := []string{"cli", "tui", "json", "yaml", "html"}
		if !slices.Contains(validFormats, outputFormat) {
			return fmt.Errorf("invalid output format: %s. Valid options: %v", outputFormat, validFormats)
		}

		if outputFormat == "tui" && len(args) > 1 {
			return fmt.Errorf("tui output works on a single input, got %d", len(args))
		}

		for _, path := range args {
			if strings.HasSuffix(strings.ToLower(path), ".msi") {
				continue // extracted live, existence checked by the extractor
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("file does not exist: %s", path)
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]analysisResult, len(args))

		// The engine itself is synchronous; only independent inputs
		// run concurrently.
		var g errgroup.Group
		g.SetLimit(4)
		for i, path := range args {
			g.Go(func() error {
				result, err := analyzeOne(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, result := range results {
			if i > 0 {
				fmt.Println()
			}
			if err := renderResult(result); err != nil {
				return err
			}
		}
		return nil
	},
}

func analyzeOne(path string) (analysisResult, error) {
	var tables []msi.Table
	var err error
	if strings.HasSuffix(strings.ToLower(path), ".msi") {
		tables, err = msi.ExtractTables(path)
	} else {
		tables, err = msi.LoadTables(path)
	}
	if err != nil {
		return analysisResult{}, err
	}

	opts := impact.Options{UseExamplePaths: useExamplePaths}
	return analysisResult{
		Source: path,
		Info:   msi.ExtractPackageInfo(tables),
		Report: impact.Analyze(tables, opts),
	}, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "cli", "Output format")
	analyzeCmd.Flags().BoolVar(&useExamplePaths, "example-paths", false,
		"Render well-known folders as illustrative OS paths")
	analyzeCmd.Flags().StringVar(&reportPath, "report", "",
		"Output path for the HTML report (default: derived from the input name)")

	analyzeCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"cli", "tui", "json", "yaml", "html"}, cobra.ShellCompDirectiveNoFileComp
	})
}
