// Command formula compiles and evaluates formula expressions: one-shot
// evaluation, an interactive REPL, and validation of expression
// catalogs.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/formulang/formula/engine"
	"github.com/formulang/formula/number"
)

var log = logrus.New()

// session abstracts one engine+context pair so the cobra layer does not
// need to care which numeric representation was selected.
type session interface {
	eval(expr string) (string, error)
	dumpAST(expr string) (string, error)
	precompile(exprs map[string]string) error
	vars() []string
}

type typedSession[T comparable] struct {
	eng *engine.Engine[T]
	ctx *engine.Context[T]
}

func newSession[T comparable](ops number.Ops[T]) *typedSession[T] {
	eng := engine.New(ops)
	ctx := engine.NewContext[T]()
	eng.RegisterDefaultFunctions(ctx)
	return &typedSession[T]{eng: eng, ctx: ctx}
}

func (s *typedSession[T]) eval(expr string) (string, error) {
	v, err := s.eng.Evaluate(expr, s.ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", v), nil
}

func (s *typedSession[T]) dumpAST(expr string) (string, error) {
	c, err := s.eng.Compile(expr)
	if err != nil {
		return "", err
	}
	return c.Dump(), nil
}

func (s *typedSession[T]) precompile(exprs map[string]string) error {
	return s.eng.Precompile(exprs)
}

func (s *typedSession[T]) vars() []string {
	out := make([]string, 0, len(s.ctx.Variables))
	for name, value := range s.ctx.Variables {
		out = append(out, fmt.Sprintf("%s = %v", name, value))
	}
	sort.Strings(out)
	return out
}

func openSession(typeName string) (session, error) {
	switch typeName {
	case "float64":
		return newSession[float64](number.Float64Ops{}), nil
	case "float32":
		return newSession[float32](number.Float32Ops{}), nil
	case "int64":
		return newSession[int64](number.Int64Ops{}), nil
	case "int32":
		return newSession[int32](number.Int32Ops{}), nil
	case "bool":
		return newSession[bool](number.BoolOps{}), nil
	default:
		return nil, fmt.Errorf("unknown numeric type %q", typeName)
	}
}

func main() {
	var typeName string

	root := &cobra.Command{
		Use:           "formula",
		Short:         "Compile and evaluate formula expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&typeName, "type", "t", "float64",
		"numeric representation: float64, float32, int64, int32 or bool")

	evalCmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a single expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openSession(typeName)
			if err != nil {
				return err
			}
			out, err := s.eval(args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openSession(typeName)
			if err != nil {
				return err
			}
			return runREPL(s)
		},
	}

	var checkFile string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Precompile a YAML catalog of key: expression pairs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openSession(typeName)
			if err != nil {
				return err
			}
			return runCheck(s, checkFile)
		},
	}
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "catalog file to validate")
	_ = checkCmd.MarkFlagRequired("file")

	root.AddCommand(evalCmd, replCmd, checkCmd)

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("formula failed")
		os.Exit(1)
	}
}

func runCheck(s session, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	exprs := map[string]string{}
	if err := yaml.Unmarshal(data, &exprs); err != nil {
		return fmt.Errorf("parse catalog %q: %w", path, err)
	}
	if err := s.precompile(exprs); err != nil {
		return err
	}
	log.WithField("count", len(exprs)).Info("all expressions compiled")
	return nil
}
