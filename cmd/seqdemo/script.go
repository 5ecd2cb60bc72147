package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/camon88/DataStructures/linked_seq"
)

// arities maps each command to its number of numeric arguments; -1 means one
// or more.
var arities = map[string]int{
	"before":  1,
	"after":   1,
	"start":   0,
	"advance": 0,
	"remove":  0,
	"current": 0,
	"size":    0,
	"print":   0,
	"clone":   0,
	"append":  -1,
}

type command struct {
	Line int
	Name string
	Args []float64
}

type script struct {
	Name     string
	Commands []command
}

// parseScript reads one command per line. Blank lines and # comments are
// skipped.
func parseScript(name string, r io.Reader) (script, error) {
	sc := script{Name: name}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields, err := shlex.Split(scanner.Text())
		if err != nil {
			return script{}, errors.Wrapf(err, "%s:%d", name, line)
		}
		if len(fields) == 0 {
			continue
		}

		cmd := command{Line: line, Name: fields[0]}
		arity, ok := arities[cmd.Name]
		switch {
		case !ok:
			return script{}, errors.Errorf("%s:%d: unknown command %q", name, line, cmd.Name)
		case arity < 0 && len(fields) < 2:
			return script{}, errors.Errorf("%s:%d: %s needs at least one value", name, line, cmd.Name)
		case arity >= 0 && len(fields)-1 != arity:
			return script{}, errors.Errorf("%s:%d: %s takes %d value(s), got %d",
				name, line, cmd.Name, arity, len(fields)-1)
		}

		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return script{}, errors.Wrapf(err, "%s:%d", name, line)
			}
			cmd.Args = append(cmd.Args, v)
		}
		sc.Commands = append(sc.Commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return script{}, errors.Wrapf(err, "reading %s", name)
	}
	return sc, nil
}

// parseInline parses a script given on the command line, where ';' also
// separates commands.
func parseInline(name, src string) (script, error) {
	return parseScript(name, strings.NewReader(strings.ReplaceAll(src, ";", "\n")))
}

// runScript executes sc against a fresh sequence and returns it.
func runScript(ctx context.Context, sc script) (*linked_seq.Sequence, error) {
	log := logger.Get(ctx).With(zap.String("script", sc.Name))

	s := linked_seq.New()
	for _, cmd := range sc.Commands {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		var err error
		s, err = execute(log, s, cmd)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: %s", sc.Name, cmd.Line, cmd.Name)
		}
		log.Debug("Command executed",
			zap.Int("line", cmd.Line),
			zap.String("command", cmd.Name),
			zap.Stringer("sequence", s))
	}
	return s, nil
}

func execute(log *zap.Logger, s *linked_seq.Sequence, cmd command) (*linked_seq.Sequence, error) {
	switch cmd.Name {
	case "before":
		s.AddBefore(cmd.Args[0])
	case "after":
		s.AddAfter(cmd.Args[0])
	case "start":
		s.Start()
	case "advance":
		return s, s.Advance()
	case "remove":
		return s, s.RemoveCurrent()
	case "current":
		v, err := s.Current()
		if err != nil {
			return s, err
		}
		log.Info("Current element", zap.Int("line", cmd.Line), zap.Float64("value", v))
	case "size":
		log.Info("Sequence size", zap.Int("line", cmd.Line), zap.Uint64("size", s.Size()))
	case "print":
		log.Info("Sequence", zap.Int("line", cmd.Line), zap.Stringer("sequence", s))
	case "clone":
		return s.Clone(), nil
	case "append":
		return s, s.AddAll(linked_seq.FromValues(cmd.Args...))
	default:
		return s, errors.Errorf("unknown command %q", cmd.Name)
	}
	return s, nil
}
