package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msikit/msiscope/internal/html"
	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/internal/msi"
	"github.com/msikit/msiscope/internal/tui"
	"github.com/msikit/msiscope/utils"
)

// exportDocument is the serialized form shared by the JSON and YAML
// outputs.
type exportDocument struct {
	Source  string          `json:"source" yaml:"source"`
	Package msi.PackageInfo `json:"package" yaml:"package"`
	Report  *impact.Report  `json:"report" yaml:"report"`
}

func renderResult(result analysisResult) error {
	switch outputFormat {
	case "cli":
		printReport(result)
		return nil

	case "json":
		doc := exportDocument{Source: result.Source, Package: result.Info, Report: result.Report}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(data))
		return nil

	case "yaml":
		doc := exportDocument{Source: result.Source, Package: result.Info, Report: result.Report}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Print(string(data))
		return nil

	case "html":
		outPath := reportPath
		if outPath == "" {
			outPath = defaultReportPath(result.Source)
		}
		written, err := html.GenerateReport(result.Info, result.Report, outPath)
		if err != nil {
			return err
		}
		fmt.Printf("📄 HTML report written to %s\n", written)
		return nil

	case "tui":
		return tui.Run(result.Source, result.Info, result.Report)

	default:
		printReport(result)
		return nil
	}
}

func defaultReportPath(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return base + "-impact.html"
}

// printReport is the plain CLI rendering: package header, phased
// timeline, then the footprint categories.
func printReport(result analysisResult) {
	printHeader(result)
	printTimeline(result.Report.Timeline)
	printFootprint(result.Report)
	printAssessment(result.Report)
}

func printHeader(result analysisResult) {
	fmt.Printf("🔍 Installation Impact Analysis: %s\n", result.Source)
	if result.Info.ProductName != "" {
		line := result.Info.ProductName
		if result.Info.ProductVersion != "" {
			line += " " + result.Info.ProductVersion
		}
		if result.Info.Manufacturer != "" {
			line += "  |  " + result.Info.Manufacturer
		}
		fmt.Println(line)
	}
	fmt.Println(strings.Repeat("═", 65))
}

func printTimeline(timeline []impact.Phase) {
	fmt.Println("\n⏱️  EXECUTION TIMELINE")
	fmt.Println(strings.Repeat("─", 35))

	if len(timeline) == 0 {
		fmt.Println("No InstallExecuteSequence table present.")
		return
	}

	for _, phase := range timeline {
		fmt.Printf("\n%s\n", utils.HeaderStyle.Render(phase.Name))
		for _, entry := range phase.Entries {
			icon := utils.GetSeverityIcon(entry.Severity.String())
			style := utils.GetSeverityStyle(entry.Severity.String())
			fmt.Printf("  %s %5d  %s  %s\n",
				icon, entry.SequenceNumber,
				utils.PadRight(entry.ActionName, 32),
				style.Render(entry.Impact))
			if entry.Condition != "" {
				fmt.Printf("            %s\n", utils.MutedStyle.Render("when "+entry.Condition))
			}
		}
	}
}

func printFootprint(report *impact.Report) {
	fmt.Println("\n📦 INSTALLATION FOOTPRINT")
	fmt.Println(strings.Repeat("─", 35))

	for _, category := range impact.Categories {
		cat := report.Footprint[category]
		fmt.Printf("\n%s (%d)\n", utils.HeaderStyle.Render(string(category)), cat.Count)
		if cat.Count == 0 {
			fmt.Println(utils.MutedStyle.Render("  none"))
			continue
		}
		for _, entry := range cat.Entries {
			icon := utils.GetSeverityIcon(entry.Assessment.Severity.String())
			fmt.Printf("  %s %s\n", icon, entry.Label)
			if entry.Assessment.Concern != "" {
				style := utils.GetSeverityStyle(entry.Assessment.Severity.String())
				fmt.Printf("      %s\n", style.Render(entry.Assessment.Concern))
			}
			if entry.Details != "" {
				fmt.Printf("      %s\n", utils.MutedStyle.Render(entry.Details))
			}
		}
	}
}

func printAssessment(report *impact.Report) {
	high := report.TotalFindings(impact.SeverityHigh)
	fmt.Println()
	switch {
	case high > 0:
		fmt.Printf("🎯 Overall Assessment: %s\n",
			utils.HighStyle.Render(fmt.Sprintf("%d high-risk findings need review", high)))
	case report.TotalFindings(impact.SeverityMedium) > 0:
		fmt.Printf("🎯 Overall Assessment: %s\n",
			utils.WarningStyle.Render("medium-risk footprint, review recommended"))
	default:
		fmt.Printf("🎯 Overall Assessment: %s\n",
			utils.GoodStyle.Render("no elevated-risk findings"))
	}
}
