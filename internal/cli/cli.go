package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/edgecpwg/internal/app"
	"github.com/vk/edgecpwg/internal/cpwg"
	"github.com/vk/edgecpwg/internal/report"
)

// positionalCount is the number of values in d S W t h Er.
const positionalCount = 6

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Any positional count other than six, without -grid, prints the usage text
// and asks for a clean exit. The first token that is not a defined option
// starts the positional values, so "-0.2 0.41 ..." is read as six numbers.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("edge_coupled_cpwg", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, usageHeader)
		flagSet.PrintDefaults()
		fmt.Fprintln(output)
	}

	gridFlag := flagSet.String("grid", "", "Path to an .hcl file or directory of line definitions (batch mode).")
	gFlag := flagSet.String("g", "", "Path to an .hcl file or directory of line definitions (shorthand).")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text', 'json' or 'hcl'.")
	strictFlag := flagSet.Bool("strict", false, "Reject non-positive lengths and Er < 1 instead of reporting NaN.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers in batch mode.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(markPositional(flagSet, args)); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", flagSet.NArg())

	gridPath := *gridFlag
	if gridPath == "" {
		gridPath = *gFlag
	}

	cfg := app.Config{Mode: app.ModeSingle}
	switch {
	case gridPath != "" && flagSet.NArg() > 0:
		return nil, false, &ExitError{Code: 2, Message: "positional values cannot be combined with -grid"}
	case gridPath != "":
		cfg.Mode = app.ModeBatch
		cfg.GridPath = gridPath
	case flagSet.NArg() == positionalCount:
		cfg.Params = paramsFromArgs(flagSet.Args())
	default:
		slog.Debug("Not a computing invocation, printing usage and exiting.", "positional", flagSet.NArg())
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := report.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLogLevel(logLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg.Output = format
	cfg.Strict = *strictFlag
	cfg.WorkerCount = *workersFlag
	cfg.LogFormat = logFormat
	cfg.LogLevel = logLevel

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// paramsFromArgs maps d S W t h Er onto Params.
func paramsFromArgs(args []string) cpwg.Params {
	v := make([]float64, positionalCount)
	for i := range v {
		v[i] = parseLenient(args[i])
	}
	return cpwg.Params{
		Gap:       v[0],
		Width:     v[1],
		GroundGap: v[2],
		Thickness: v[3],
		Height:    v[4],
		EpsilonR:  v[5],
	}
}

// markPositional inserts "--" before the first token that is not an option
// defined on fs, so that negative numbers and stray dashes are handed to the
// positional list instead of being rejected by the flag package.
func markPositional(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			return args
		}

		name := arg[1:]
		if name[0] == '-' {
			name = name[1:]
		}
		name, _, hasValue := strings.Cut(name, "=")
		if name == "h" || name == "help" {
			continue
		}

		f := fs.Lookup(name)
		if f == nil {
			marked := make([]string, 0, len(args)+1)
			marked = append(marked, args[:i]...)
			marked = append(marked, "--")
			return append(marked, args[i:]...)
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		if !hasValue {
			i++ // the option's value
		}
	}
	return args
}
