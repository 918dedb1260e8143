// Command cl is the Chemistry Language interpreter: a REPL when invoked
// with no file arguments, a script runner otherwise.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chem-lang/cl/config"
	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/exec"
	"github.com/chem-lang/cl/parse"
	"github.com/chem-lang/cl/scan"
)

var (
	evalLine   string
	promptFlag string
	precision  int
	debugTags  []string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cl [file ...]",
		Short:         "Chemistry Language interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCL,
	}
	cmd.Flags().StringVarP(&evalLine, "eval", "e", "", "execute the argument as a single statement")
	cmd.Flags().StringVar(&promptFlag, "prompt", "", "REPL prompt (default \"cl> \")")
	cmd.Flags().IntVar(&precision, "precision", decimal.WorkingPrecision, "decimal working precision (informational; the engine's precision is fixed)")
	cmd.Flags().StringSliceVar(&debugTags, "debug", nil, "enable one or more debug trace tags (tokens, balance, eval)")
	return cmd
}

func runCL(cmd *cobra.Command, args []string) error {
	log := newLogger(debugTags)
	defer log.Sync()

	conf := &config.Config{}
	conf.SetPrompt(promptFlag)
	for _, tag := range debugTags {
		conf.SetDebug(tag, true)
	}
	if precision != decimal.WorkingPrecision {
		log.Warn("requested precision ignored; engine runs at a fixed working precision",
			zap.Int("requested", precision), zap.Int("actual", decimal.WorkingPrecision))
	}

	if evalLine != "" {
		return runSource(conf, log, "<eval>", strings.NewReader(evalLine), false)
	}

	if len(args) == 0 {
		return runSource(conf, log, "<stdin>", bufio.NewReader(os.Stdin), true)
	}

	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = runSource(conf, log, name, bufio.NewReader(f), false)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// runSource scans, parses, and evaluates one input to completion, logging a
// run-start line through log; the per-tag traces come from the scanner and
// exec's Context, not through log. A nonzero-worthy failure (any statement that didn't run cleanly in a
// non-interactive run) surfaces as a returned error, which main turns into
// exit code 1.
func runSource(conf *config.Config, log *zap.Logger, name string, r byteReader, interactive bool) error {
	sc := scan.New(conf, name, r)
	p := parse.NewParser(sc, conf, name)
	ctx := exec.NewContext(conf)
	log.Debug("run starting", zap.String("source", name), zap.Bool("interactive", interactive))
	clean := exec.Run(ctx, p, os.Stdout, interactive)
	if !interactive && !clean {
		return fmt.Errorf("%s: completed with errors", name)
	}
	return nil
}

// byteReader is the minimal interface scan.New needs; bufio.Reader and
// strings.Reader both satisfy it.
type byteReader interface {
	ReadByte() (byte, error)
}

func newLogger(tags []string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if len(tags) == 0 {
		// Without debug tags only warnings (such as --precision) get through.
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
