package main

import (
	"context"
	"encoding/json"
	"fmt"
	conf "github.com/heetch/confita"
	"github.com/heetch/confita/backend"
	"github.com/heetch/confita/backend/env"
	"github.com/heetch/confita/backend/file"
	cu "github.com/nj-eka/LetterStatsGo/ctxutils"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/letters"
	"github.com/nj-eka/LetterStatsGo/logging"
	"github.com/nj-eka/LetterStatsGo/output"
	"github.com/nj-eka/LetterStatsGo/regs"
	"github.com/nj-eka/LetterStatsGo/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"
)

const (
	DefaultFormat       = "text"
	DefaultSingleFilter = "vowel"
	DefaultPairFilter   = "consonant"
	DefaultPairCase     = "upper"
	DefaultVerbose      = false
	EnvPrefix           = "LETTERSTATS_"
	ConfigFileEnv       = EnvPrefix + "CONFIG"
)

var (
	AppName           = filepath.Base(os.Args[0])
	DefaultConfigFile = "letterstats.yml"
	DefaultLogFile    = fmt.Sprintf("%s.log", AppName)
	DefaultTraceFile  = fmt.Sprintf("%s.trace.out", AppName)
)

type Config struct {
	//// 0. logging
	// logging output file, if empty then os.Stdout
	LogFile string `config:"log_file,description=Path to logging output file (empty = os.Stdout)" yaml:"log_file"`
	// logrus logging levels: panic, fatal, error, warn / warning, info, debug, trace
	LogLevel string `config:"log_level,description=Logging level: panic fatal error warn info debug trace" yaml:"log_level"`
	// supported logging formats: text, json
	LogFormat string `config:"log_format,description=Logging format: text json" yaml:"log_format"`
	//// 0.1 trace
	// Go execution tracer output file (tracing is on if LogLevel == trace)
	TraceFile string `config:"trace_file,description=Trace output file (tracing is on if LogLevel == trace)" yaml:"trace_file"`

	//// 1. report
	// text (reference format), json, yaml
	Format string `config:"output_format,description=Report format: text json yaml" yaml:"output_format"`
	// label of the total line of every block
	TotalLabel string `config:"total_label,description=Label of the total line" yaml:"total_label"`
	// letter class removed from single letter stats in the filtered section: vowel, consonant, none
	SingleFilter string `config:"single_filter,description=Class removed from single letter stats: vowel consonant none" yaml:"single_filter"`
	// letter class removed from pair stats in the filtered section
	PairFilter string `config:"pair_filter,description=Class removed from pair stats: vowel consonant none" yaml:"pair_filter"`
	// case of pair tokens: upper, lower
	PairCase string `config:"pair_case,description=Case of pair tokens: upper lower" yaml:"pair_case"`

	//// 2. monitoring
	// Display pass statistics (os.Stderr)
	Verbose bool `config:"verbose,description=Display pass statistics (os.Stderr)" yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		LogFile:      DefaultLogFile,
		LogLevel:     logging.DefaultLevel.String(),
		LogFormat:    logging.DefaultFormat,
		TraceFile:    DefaultTraceFile,
		Format:       DefaultFormat,
		TotalLabel:   output.DefaultTotalLabel,
		SingleFilter: DefaultSingleFilter,
		PairFilter:   DefaultPairFilter,
		PairCase:     DefaultPairCase,
		Verbose:      DefaultVerbose,
	}
}

var currentUser *user.User

// prefixedEnv reads config keys from EnvPrefix-ed environment variables only,
// e.g. pair_case from LETTERSTATS_PAIR_CASE.
func prefixedEnv(prefix string) backend.Backend {
	be := env.NewBackend()
	return backend.Func(be.Name(), func(ctx context.Context, key string) ([]byte, error) {
		return be.Get(ctx, prefix+key)
	})
}

// loadConfig applies configFile (if it exists) and then the environment on top of cfg.
func loadConfig(ctx context.Context, cfg *Config, configFile string) error {
	backends := make([]backend.Backend, 0, 2)
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			backends = append(backends, file.NewBackend(configFile))
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("config file [%s]: %w", configFile, err)
		}
	}
	backends = append(backends, prefixedEnv(EnvPrefix))
	return conf.NewLoader(backends...).Load(ctx, cfg)
}

func bindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LogFile, "log_file", cfg.LogFile, "Path to logging output file (empty = os.Stdout)")
	fs.StringVarP(&cfg.LogLevel, "log_level", "l", cfg.LogLevel, "Logging level: panic fatal error warn info debug trace")
	fs.StringVar(&cfg.LogFormat, "log_format", cfg.LogFormat, "Logging format: text json")
	fs.StringVar(&cfg.TraceFile, "trace_file", cfg.TraceFile, "Trace output file (tracing is on if log_level == trace)")
	fs.StringVarP(&cfg.Format, "output_format", "f", cfg.Format, "Report format: text json yaml")
	fs.StringVar(&cfg.TotalLabel, "total_label", cfg.TotalLabel, "Label of the total line")
	fs.StringVar(&cfg.SingleFilter, "single_filter", cfg.SingleFilter, "Class removed from single letter stats: vowel consonant none")
	fs.StringVar(&cfg.PairFilter, "pair_filter", cfg.PairFilter, "Class removed from pair stats: vowel consonant none")
	fs.StringVar(&cfg.PairCase, "pair_case", cfg.PairCase, "Case of pair tokens: upper lower")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Display pass statistics (os.Stderr)")
}

func newRootCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] FILE_A FILE_B", AppName),
		Short: "Letter frequency statistics",
		Long: `Counts letters of FILE_A (case-sensitive) and doubled letters of FILE_B
(case-insensitive), then prints full and filtered statistics sorted by token.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return cmd.Usage()
			}
			ctx := cu.BuildContext(cmd.Context(), cu.SetContextOperation("0.main"))
			if err := logging.Initialize(ctx, cfg.LogFile, cfg.LogLevel, cfg.LogFormat, cfg.TraceFile, currentUser); err != nil {
				return err
			}
			if cfgJson, err := json.Marshal(cfg); err == nil {
				logging.Msg(ctx).Debugf("options: %v", string(cfgJson))
			}
			logging.Msg(ctx).Infof("%s started with pid %d", AppName, os.Getpid())
			if err := run(ctx, cfg, args[0], args[1], cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				return err
			}
			return nil
		},
	}
	bindFlags(cmd.Flags(), cfg)
	return cmd
}

// run scans fileA for single letters and fileB for pairs and prints both sections.
// Nothing is printed if any pass fails.
func run(ctx context.Context, cfg *Config, fileA, fileB string, out, errOut io.Writer) errs.Error {
	startTime := time.Now()
	singleFilter, err := letters.ParseClass(cfg.SingleFilter)
	if err != nil {
		return errs.E(ctx, errs.KindInvalidValue, err)
	}
	pairFilter, err := letters.ParseClass(cfg.PairFilter)
	if err != nil {
		return errs.E(ctx, errs.KindInvalidValue, err)
	}
	pairCase, err := workflow.ParsePairCase(cfg.PairCase)
	if err != nil {
		return errs.E(ctx, errs.KindInvalidValue, err)
	}
	printer, err := output.NewPrinter(cfg.Format, cfg.TotalLabel)
	if err != nil {
		return errs.E(ctx, errs.KindInvalidValue, err)
	}

	pipeline := workflow.Pipeline{
		workflow.NewPass(fileA, workflow.NewSingleLetters(), currentUser),
		workflow.NewPass(fileB, workflow.NewPairLetters(pairCase), currentUser),
	}
	if cfg.Verbose {
		defer output.PrintProcessMonitors(errOut, startTime, pipeline.StatProducers()...)
	}
	results, perr := pipeline.Run(ctx)
	if perr != nil {
		return perr
	}
	singles, pairs := results[0], results[1]

	filteredSingles, filteredPairs := singles.Clone(), pairs.Clone()
	removed := letters.RemoveByClass(filteredSingles, singleFilter)
	logging.Msg(ctx).Debugf("single letters: %d %s tokens removed", removed, singleFilter)
	removed = letters.RemoveByClass(filteredPairs, pairFilter)
	logging.Msg(ctx).Debugf("pairs: %d %s tokens removed", removed, pairFilter)

	report := output.Report{Sections: []output.Section{
		{Title: output.TitleFull, Blocks: blocks(singles, pairs)},
		{Title: output.TitleFiltered, Blocks: blocks(filteredSingles, filteredPairs)},
	}}
	if err := printer.Print(out, report); err != nil {
		return errs.E(ctx, errs.KindIO, fmt.Errorf("printing report failed: %w", err))
	}
	logging.Msg(ctx).Debug("processing - done")
	return nil
}

func blocks(singles, pairs regs.Stats) []output.Block {
	return []output.Block{
		{Name: "single", Stats: singles},
		{Name: "pairs", Stats: pairs},
	}
}

func configFilePath() string {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}
	return DefaultConfigFile
}

// execute returns the process exit code.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	defer logging.Finalize()
	ctx = cu.BuildContext(ctx, cu.SetContextOperation("00.init"))

	cfg := defaultConfig()
	if err := loadConfig(ctx, &cfg, configFilePath()); err != nil {
		logging.LogError(ctx, errs.SeverityCritical, errs.KindInvalidValue, fmt.Errorf("invalid config: %w", err))
		return 1
	}
	cmd := newRootCmd(&cfg)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logging.LogError(ctx, errs.SeverityCritical, err)
		fmt.Fprintf(errOut, "%s: %v\n", AppName, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
