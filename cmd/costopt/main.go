package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"costopt/internal/config"
	"costopt/internal/models"
	"costopt/internal/version"
	"costopt/pkg/analyzer"
	"costopt/pkg/formatter"
	"costopt/pkg/inventory"
	"costopt/pkg/optimizer"
	"costopt/pkg/prompt"
)

// options holds the CLI flag values for one run.
type options struct {
	auto        bool
	dryRun      bool
	file        string
	output      string
	configFile  string
	debug       bool
	showVersion bool
}

func main() {
	opts := &options{}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})
	log.SetLevel(logrus.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "costopt",
		Short: "Analyze cloud inventory spend and shut down idle instances",
		Long: `costopt reads a cloud inventory snapshot from JSON, checks total spend
against the monthly budget, flags expensive and idle instances, and can
simulate shutting down the idle ones to reclaim their cost.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Println(version.Get())
				return nil
			}
			if opts.debug {
				log.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if opts.file != "" {
				cfg.InventoryFile = opts.file
			}
			if opts.output != "" {
				cfg.OutputFile = opts.output
			}

			return run(cfg, opts, log, os.Stdin, os.Stdout)
		},
	}

	rootCmd.Flags().BoolVar(&opts.auto, "auto", false,
		"Shut down idle instances without prompting")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false,
		"Report only, never modify the inventory (takes precedence over --auto)")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "",
		fmt.Sprintf("Inventory file to analyze (default: %s)", config.DefaultInventoryFile))
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "",
		fmt.Sprintf("Where to write the mutated inventory (default: %s)", config.DefaultOutputFile))
	rootCmd.Flags().StringVar(&opts.configFile, "config", "costopt.yaml",
		"Optional YAML config with threshold and path overrides")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false,
		"Enable debug logging on stderr")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false,
		"Show version information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// startAnalysisSpinner starts a progress spinner when the report goes to
// the real stdout. Piped and test runs get no spinner.
func startAnalysisSpinner(out io.Writer) *spinner.Spinner {
	if out != io.Writer(os.Stdout) {
		return nil
	}
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = " Analyzing cloud inventory ..."
	s.Start()
	return s
}

// run executes the whole pipeline: load, analyze, report, optionally
// shut down and save, recommend. stdin and stdout are parameters so the
// pipeline can be driven by tests.
func run(cfg config.Config, opts *options, log *logrus.Logger, stdin io.Reader, stdout io.Writer) error {
	scanStartTime := time.Now()
	s := startAnalysisSpinner(stdout)

	doc, err := inventory.Load(cfg.InventoryFile)
	if err != nil {
		if s != nil {
			s.Stop()
		}
		return err
	}
	log.Debugf("loaded %d instances from %s", len(doc.Instances), cfg.InventoryFile)

	if dups := doc.DuplicateInstanceIDs(); len(dups) > 0 {
		log.Warnf("duplicate instance IDs in inventory, shutdown will match the first occurrence only: %s",
			strings.Join(dups, ", "))
	}

	analysis := analyzer.AnalyzeBudget(doc, cfg.HighCostThreshold)
	idle := analyzer.FindIdleInstances(doc, cfg.IdleCPUThreshold)

	if s != nil {
		s.FinalMSG = fmt.Sprintf("✓ [%d instances analyzed] Completed in %.2f seconds\n",
			analysis.TotalCount, time.Since(scanStartTime).Seconds())
		s.Stop()
	}

	formatter.PrintReportHeader(stdout, time.Now())
	formatter.PrintBudgetAnalysis(stdout, analysis)
	formatter.PrintExpensiveInstances(stdout, analysis.OverBudgetInstances, cfg.HighCostThreshold)
	formatter.PrintIdleInstances(stdout, idle, cfg.IdleCPUThreshold)

	if len(idle) > 0 {
		switch {
		case opts.dryRun:
			fmt.Fprintln(stdout, "\nDry run: no changes will be made.")
		case opts.auto:
			fmt.Fprintln(stdout, "\nAuto mode: shutting down idle instances ...")
			if err := shutdownAndSave(cfg, doc, idle, stdout); err != nil {
				return err
			}
		default:
			if prompt.Confirm(stdin, stdout, "\nShut down idle instances?") {
				if err := shutdownAndSave(cfg, doc, idle, stdout); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(stdout, "No changes made. Idle instances remain running.")
			}
		}
	}

	formatter.PrintRecommendations(stdout, analyzer.BuildRecommendations(analysis, idle))
	formatter.PrintReportFooter(stdout)
	return nil
}

// shutdownAndSave applies the shutdown mutation and persists the document.
// The two always happen together, in that order; a failed save leaves the
// mutation in memory only and aborts the run.
func shutdownAndSave(cfg config.Config, doc *models.InventoryDocument, idle []*models.Instance, stdout io.Writer) error {
	savings := optimizer.New().ShutdownIdle(doc, idle)
	if err := inventory.Save(cfg.OutputFile, doc); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Inventory saved to %s\n", cfg.OutputFile)
	formatter.PrintOptimizationResults(stdout, len(idle), savings)
	return nil
}
