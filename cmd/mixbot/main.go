package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/analyzer"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/audio"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/cli"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/feedback"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/mains"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/report"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version          bool     `short:"v" help:"Show version information"`
	DAW              string   `name:"daw" default:"your DAW" help:"DAW in use, for plugin suggestions (e.g. 'FL Studio', 'Ableton Live')"`
	Vibe             string   `help:"Genre or vibe keywords to steer feedback (e.g. 'dark trap', 'acoustic folk')"`
	JSON             bool     `help:"Emit metrics and feedback as JSON instead of text"`
	Plain            bool     `help:"Plain text output without the progress UI"`
	Logs             bool     `help:"Save a detailed analysis log next to each input file"`
	SilenceThreshold float64  `name:"silence-threshold" default:"-40" help:"Silence threshold in dB"`
	MinSilence       float64  `name:"min-silence" default:"0.1" help:"Minimum silence duration in seconds"`
	Files            []string `arg:"" name:"files" help:"Audio files to analyze ('-' reads from stdin)" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("mixbot"),
		kong.Description("AI-inspired mixing and mastering feedback for your tracks"),
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

	// Validate input
	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	cfg := analyzer.DefaultConfig()
	cfg.SilenceThresholdDB = cliArgs.SilenceThreshold
	cfg.MinSilenceDuration = cliArgs.MinSilence

	mainsHz := mains.Frequency()

	var results []report.FileResult
	var failed int

	if cliArgs.Plain || cliArgs.JSON {
		results, failed = analyzeAll(cliArgs, cfg, mainsHz, nil)
	} else {
		// Bubbletea UI path: analysis runs in the background and streams
		// progress messages; reports are printed after the TUI exits.
		model := ui.NewModel(cliArgs.Files)
		p := tea.NewProgram(model, tea.WithAltScreen())

		done := make(chan struct{})
		go func() {
			defer close(done)
			results, failed = analyzeAll(cliArgs, cfg, mainsHz, p)
			p.Send(ui.AllCompleteMsg{})
		}()

		if _, err := p.Run(); err != nil {
			cli.PrintError(fmt.Sprintf("UI error: %v", err))
			os.Exit(1)
		}
		<-done
	}

	if cliArgs.JSON {
		if err := report.WriteJSON(os.Stdout, results); err != nil {
			cli.PrintError(fmt.Sprintf("writing JSON: %v", err))
			os.Exit(1)
		}
	} else {
		styled := !cliArgs.Plain
		for _, r := range results {
			report.WriteAnalysis(os.Stdout, r.File, r.Metrics)
			report.WriteFeedback(os.Stdout, r.Feedback, styled)
			fmt.Println()
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// analyzeAll runs the analysis pipeline over every input file. When p is
// non-nil, progress and completion messages are streamed to the TUI.
// Decode failures are reported per file and counted rather than aborting
// the whole batch.
func analyzeAll(cliArgs *CLI, cfg analyzer.Config, mainsHz int, p *tea.Program) ([]report.FileResult, int) {
	var results []report.FileResult
	var failed int

	for i, inputPath := range cliArgs.Files {
		if p != nil {
			p.Send(ui.FileStartMsg{FileIndex: i, FileName: inputPath})
		}

		var progress analyzer.ProgressFunc
		if p != nil {
			progress = func(stage string, frac float64) {
				p.Send(ui.ProgressMsg{Stage: stage, Progress: frac})
			}
		}

		m, err := analyzeOne(inputPath, cfg, progress)
		if err != nil {
			failed++
			if p != nil {
				p.Send(ui.FileCompleteMsg{FileIndex: i, Error: err})
			} else {
				cli.PrintError(fmt.Sprintf("%s: %v", inputPath, err))
			}
			continue
		}

		fb := feedback.Generate(m, cliArgs.DAW, cliArgs.Vibe, mainsHz)
		result := report.FileResult{File: inputPath, Metrics: m, Feedback: fb}
		results = append(results, result)

		if cliArgs.Logs && inputPath != "-" {
			if logPath, err := report.SaveLog(result); err != nil {
				cli.PrintError(fmt.Sprintf("saving log: %v", err))
			} else if cliArgs.Plain {
				fmt.Fprintf(os.Stderr, "Analysis log saved to %s\n", logPath)
			}
		}

		if p != nil {
			p.Send(ui.FileCompleteMsg{FileIndex: i, Metrics: m})
		}
	}

	return results, failed
}

// analyzeOne loads a single input ("-" means stdin) and runs the analyzer.
func analyzeOne(inputPath string, cfg analyzer.Config, progress analyzer.ProgressFunc) (*analyzer.Metrics, error) {
	var (
		w   *audio.Waveform
		err error
	)
	if inputPath == "-" {
		w, err = audio.LoadReader(os.Stdin, "stdin")
	} else {
		w, err = audio.Load(inputPath)
	}
	if err != nil {
		return nil, err
	}

	return analyzer.Analyze(w, cfg, progress)
}
