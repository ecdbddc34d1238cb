package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	faangerrors "github.com/dbmrq/faang/internal/errors"
)

// enumFlag is a pflag.Value restricted to a closed set of string values.
type enumFlag[T ~string] struct {
	what    string
	value   *T
	parse   func(string) (T, error)
	choices func() []T
}

var _ pflag.Value = (*enumFlag[string])(nil)

func newEnumFlag[T ~string](what string, value *T, parse func(string) (T, error), choices func() []T) *enumFlag[T] {
	return &enumFlag[T]{what: what, value: value, parse: parse, choices: choices}
}

func (f *enumFlag[T]) String() string { return string(*f.value) }

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return faangerrors.InvalidChoice(f.what, s, names(f.choices()))
	}
	*f.value = v
	return nil
}

func (f *enumFlag[T]) Type() string {
	return strings.ReplaceAll(f.what, " ", "-")
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// registerCompletion offers the closed set of values for a flag.
func registerCompletion[T ~string](cmd *cobra.Command, flag string, choices func() []T) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names(choices()), cobra.ShellCompDirectiveNoFileComp
	})
}
