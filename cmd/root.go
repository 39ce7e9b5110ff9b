package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gosap/internal/config"
	"github.com/alexiusacademia/gosap/internal/logging"
	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
	"github.com/alexiusacademia/gosap/internal/version"
)

var (
	cfgFile      string
	flagProgram  string
	flagGen      string
	flagTimeout  time.Duration
	flagVisible  bool
	flagUnits    string
	flagLogLevel string
	flagLogFile  string
	dryRun       bool
	startApp     bool
	outputFormat string
)

// state is resolved once per invocation, before any command runs.
var state struct {
	cfg    *config.Config
	gen    sap.Generation
	units  enums.Units
	logger *slog.Logger
	closer io.Closer
}

var rootCmd = &cobra.Command{
	Use:   "gosap",
	Short: "SAP2000 automation from the command line",
	Long: `gosap - Go SAP2000 automation

A CLI tool that drives a running SAP2000 through its automation
interface (v14 and v15).

This tool helps structural engineers:
  - Call any known interface operation by name
  - Run scripted sequences of operations from YAML files
  - Define NSCP 2015 concrete materials and load combinations
  - Plot frame elevations read back from the model

Use --dry-run to record the calls instead of sending them.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   %s v%-49s║\n", version.Name, version.Version)
		fmt.Printf("  ║   %-56s║\n", version.Description)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Typed v14 and v15 interfaces over one call marshaler")
		fmt.Println("    • By-reference outputs and array arguments")
		fmt.Println("    • YAML scripts with status checking")
		fmt.Println("    • NSCP 2015 concrete and load combination presets")
		fmt.Println()
		fmt.Println("  Use 'gosap --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./"+config.DefaultFile+" when present)")
	pf.StringVar(&flagProgram, "program", "", "Registered program name (default per generation)")
	pf.StringVarP(&flagGen, "generation", "g", "", "Interface generation: v14 or v15")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Limit for a single external call, 0 disables")
	pf.BoolVar(&flagVisible, "visible", true, "Show the application window when starting it")
	pf.StringVarP(&flagUnits, "units", "u", "", "Unit system, e.g. kN_m_C")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error or off")
	pf.StringVar(&flagLogFile, "log-file", "", "Also log to this rotated file")
	pf.BoolVar(&dryRun, "dry-run", false, "Record calls instead of sending them")
	pf.BoolVar(&startApp, "start", false, "Start the application before the first call")
	pf.StringVarP(&outputFormat, "output", "o", "text", "Output format: text or json")
}

// setup layers flags over the loaded configuration and installs logging.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch outputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q, want text or json", outputFormat)
	}

	state.cfg = cfg
	if state.gen, err = cfg.GenerationValue(); err != nil {
		return err
	}
	if state.units, err = cfg.UnitsValue(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	state.logger, state.closer, err = logging.Setup(logging.Options{
		ConsoleLevel: level,
		FilePath:     cfg.LogFile,
		FileLevel:    min(level, slog.LevelInfo),
	})
	return err
}

func teardown(cmd *cobra.Command, args []string) error {
	if state.closer == nil {
		return nil
	}
	return state.closer.Close()
}

func applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("program", func() { cfg.Program = flagProgram })
	set("generation", func() { cfg.Generation = flagGen })
	set("timeout", func() { cfg.CallTimeout = flagTimeout })
	set("visible", func() { cfg.Visible = flagVisible })
	set("units", func() { cfg.Units = flagUnits })
	set("log-level", func() { cfg.LogLevel = flagLogLevel })
	set("log-file", func() { cfg.LogFile = flagLogFile })
}

func jsonOutput() bool {
	return strings.EqualFold(outputFormat, "json")
}
