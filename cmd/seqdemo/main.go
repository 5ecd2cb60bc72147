// Command seqdemo runs cursor scripts, each against its own sequence, and
// prints every resulting sequence followed by their concatenation.
//
//	seqdemo -e 'after 1.1; after 2.2; start; remove' script.txt
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/camon88/DataStructures/linked_seq"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	flags := pflag.NewFlagSet("seqdemo", pflag.ContinueOnError)
	inline := flags.StringArrayP("exec", "e", nil, "inline script, commands separated by ';' (repeatable)")
	logLevel := flags.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer func() {
		_ = log.Sync()
	}()

	scripts, err := loadScripts(*inline, flags.Args())
	if err != nil {
		log.Error("Loading scripts failed", zap.Error(err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logger.WithLogger(ctx, log)

	if err := run(ctx, scripts, os.Stdout); err != nil {
		log.Error("Running scripts failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := cfg.Build()
	return log, errors.WithStack(err)
}

func loadScripts(inline, files []string) ([]script, error) {
	scripts := make([]script, 0, len(inline)+len(files))
	for i, src := range inline {
		sc, err := parseInline(fmt.Sprintf("exec-%d", i+1), src)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, sc)
	}
	for _, name := range files {
		sc, err := loadFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, sc)
	}
	if len(scripts) == 0 {
		return nil, errors.New("no scripts given")
	}
	return scripts, nil
}

func loadFile(name string) (script, error) {
	f, err := os.Open(name)
	if err != nil {
		return script{}, errors.WithStack(err)
	}
	defer f.Close()

	return parseScript(name, f)
}

// runAll runs every script in its own task. Each sequence is touched by
// exactly one task.
func runAll(ctx context.Context, scripts []script) ([]*linked_seq.Sequence, error) {
	results := make([]*linked_seq.Sequence, len(scripts))
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, sc := range scripts {
			spawn(sc.Name, parallel.Continue, func(ctx context.Context) error {
				s, err := runScript(ctx, sc)
				if err != nil {
					return err
				}
				results[i] = s
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// run executes the scripts and writes each result, then their concatenation.
func run(ctx context.Context, scripts []script, out io.Writer) error {
	results, err := runAll(ctx, scripts)
	if err != nil {
		return err
	}

	total := linked_seq.New()
	for i, s := range results {
		if _, err := fmt.Fprintf(out, "%s: %s\n", scripts[i].Name, s); err != nil {
			return errors.WithStack(err)
		}
		total, err = linked_seq.Concatenation(total, s)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "concatenation: %s\n", total)
	return errors.WithStack(err)
}
