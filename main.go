package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	utils "github.com/viranchils96/word-frequency/utils"
)

const usage = `
Use a file instead of paste:
--file path/to/your/file
-f path/to/your/file

Include common words in the results
--include-common

Match words case-sensitively
-c

Longest word to count, also the number of words to show
--max-length <int>
-m <int>

Log timings to stderr
--verbose
-v

Show a progress bar while reading --file
--progress
`

type config struct {
	path     string
	opts     utils.Options
	verbose  bool
	progress bool
	help     bool
}

// uint16Value is a flag.Value rejecting anything outside 0..65535.
type uint16Value uint16

func (v *uint16Value) String() string { return strconv.FormatUint(uint64(*v), 10) }

func (v *uint16Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return errors.New("must be an integer between 0 and 65535")
	}
	*v = uint16Value(n)
	return nil
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	maxLength := uint16Value(utils.DefaultMaxLength)

	fs := flag.NewFlagSet("word-frequency", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	fs.StringVar(&cfg.path, "file", "", "read input from file")
	fs.StringVar(&cfg.path, "f", "", "read input from file")
	fs.BoolVar(&cfg.opts.IncludeCommon, "include-common", false, "include stop words")
	fs.BoolVar(&cfg.opts.CaseSensitive, "c", false, "case-sensitive matching")
	fs.Var(&maxLength, "max-length", "maximum word length and result count")
	fs.Var(&maxLength, "m", "maximum word length and result count")
	fs.BoolVar(&cfg.help, "help", false, "show help")
	fs.BoolVar(&cfg.help, "h", false, "show help")
	fs.BoolVar(&cfg.verbose, "verbose", false, "debug logging")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.progress, "progress", false, "progress bar while reading --file")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return cfg, errors.New("unexpected arguments")
	}
	cfg.opts.MaxLength = uint16(maxLength)
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func execute(cfg config, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	if cfg.help {
		_, err := fmt.Fprint(stdout, usage)
		return err
	}

	start := time.Now()
	var (
		input string
		err   error
	)
	if cfg.path != "" {
		var progress io.Writer
		if cfg.progress {
			progress = stderr
		}
		input, err = utils.ReadFile(cfg.path, progress)
	} else {
		fmt.Fprintln(stdout, "Enter or paste text (Ctrl+D to end):")
		input, err = utils.ReadInput(stdin)
		if err != nil {
			err = fmt.Errorf("read stdin: %w", err)
		}
	}
	if err != nil {
		return err
	}
	logger.Debug("input loaded", zap.Int("bytes", len(input)), zap.Duration("took", time.Since(start)))

	start = time.Now()
	table := utils.CountWords(input, cfg.opts)
	logger.Debug("words counted",
		zap.Int("distinct", table.Len()),
		zap.Int("total", table.Total()),
		zap.Duration("took", time.Since(start)))

	// max-length doubles as the result count.
	ranked := utils.Rank(table, int(cfg.opts.MaxLength))
	logger.Debug("ranked", zap.Int("shown", len(ranked)))

	return utils.Render(stdout, ranked, cfg.opts.MaxLength)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	logger := newLogger(stderr, cfg.verbose)
	defer logger.Sync()

	if err := execute(cfg, logger, stdin, stdout, stderr); err != nil {
		logger.Error("word count failed", zap.Error(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
