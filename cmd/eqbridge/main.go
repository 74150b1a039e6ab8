package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jroot3d/eqbridge/internal/cli"
	"github.com/jroot3d/eqbridge/internal/converter"
	"github.com/jroot3d/eqbridge/internal/logging"
	"github.com/jroot3d/eqbridge/internal/mains"
	"github.com/jroot3d/eqbridge/internal/ui"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool     `short:"v" help:"Show version information"`
	Author  string   `default:"JRoot3D" help:"Author written into generated presets"`
	Tags    string   `default:"Calibration" help:"Tags written into generated presets"`
	Out     string   `short:"o" type:"path" default:"presets" help:"Directory for generated .ffp presets"`
	Scan    string   `type:"path" default:"results" help:"Directory scanned for *ParametricEQ.txt exports when no files are given"`
	Logs    bool     `help:"Save conversion reports alongside generated presets"`
	Files   []string `arg:"" name:"files" help:"Parametric EQ exports to convert" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("eqbridge"),
		kong.Description("Parametric EQ text exports to FabFilter Pro-Q 4 presets"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Without explicit files, scan the results directory the measurement
	// tools export into.
	files := cliArgs.Files
	if len(files) == 0 {
		found, err := converter.Discover(cliArgs.Scan)
		if err != nil {
			cli.PrintError(fmt.Sprintf("Scanning %s: %v", cliArgs.Scan, err))
			os.Exit(1)
		}
		files = found
	}

	if len(files) == 0 {
		cli.PrintError(fmt.Sprintf("No *ParametricEQ.txt exports found in %s", cliArgs.Scan))
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	if err := os.MkdirAll(cliArgs.Out, 0o755); err != nil {
		cli.PrintError(fmt.Sprintf("Creating output directory: %v", err))
		os.Exit(1)
	}

	// Detect mains frequency once; reports use it to flag hum notches.
	mainsHz := 0
	if cliArgs.Logs {
		mainsHz = mains.Hz()
	}

	// Create the Bubbletea UI model
	model := ui.NewModel(files)

	// Start the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Start converting in background
	go func() {
		for i, inputPath := range files {
			p.Send(ui.FileStartMsg{
				FileIndex: i,
				FileName:  inputPath,
			})

			outputPath := filepath.Join(cliArgs.Out, converter.OutputName(inputPath))
			result, err := converter.ConvertFile(inputPath, outputPath, cliArgs.Author, cliArgs.Tags)
			if err != nil {
				p.Send(ui.FileCompleteMsg{
					FileIndex: i,
					Error:     err,
				})
				continue
			}

			// Generate conversion report if --logs flag is set
			if cliArgs.Logs {
				reportData := logging.ReportData{
					InputPath:  inputPath,
					OutputPath: outputPath,
					When:       time.Now(),
					Result:     result,
					MainsHz:    mainsHz,
				}
				if err := logging.WriteReport(reportData); err != nil {
					p.Send(ui.FileCompleteMsg{
						FileIndex: i,
						Error:     err,
					})
					continue
				}
			}

			p.Send(ui.FileCompleteMsg{
				FileIndex:   i,
				OutputPath:  outputPath,
				FilterCount: result.FilterCount,
				Preamp:      result.Preset.Preamp,
				Dropped:     result.DroppedFilters,
			})
		}

		// Signal all complete
		p.Send(ui.AllCompleteMsg{})
	}()

	// Run the program
	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}
