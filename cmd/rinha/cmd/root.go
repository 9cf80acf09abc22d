// Copyright 2024 The Rinha Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd holds the cobra command tree for the rinha CLI, the way
// cmd/cue/cmd holds CUE's. Unlike CUE's single multi-verb binary, Rinha's
// surface is small: running a program is the default action of the root
// command itself (no `run` verb), matching
// original_source/src/interpreter/main.cpp's single-purpose CLI, plus two
// supplemental debug/introspection subcommands (ast, version) that the
// distilled spec leaves implicit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/internal/rinhadebug"
	"github.com/asfernandes/rinha-de-compiler/rinha"
	"github.com/asfernandes/rinha-de-compiler/sink"
)

var strategyFlag string

// NewRootCmd builds the `rinha` root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rinha <file>",
		Short:         "Run a Rinha source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	root.Flags().StringVar(&strategyFlag, "strategy", "",
		"evaluation strategy: tree-walker or coroutine (overrides RINHA_EXEC_STRATEGY)")

	root.AddCommand(newASTCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	rinhadebug.Init()

	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	program, parseErrs := rinha.Parse(filename, src)
	if parseErrs != nil {
		parseErrs.SortByPosition()
		errors.Print(cmd.OutOrStdout(), parseErrs)
		return exitError{code: 1}
	}

	strategy, err := resolveStrategy()
	if err != nil {
		return err
	}

	out := sink.NewWriter(cmd.OutOrStdout())
	_, runErr := program.Run(strategy, out)
	out.Flush()
	if runErr != nil {
		errors.PrintOne(cmd.OutOrStdout(), runErr)
		return exitError{code: 1}
	}
	return nil
}

// resolveStrategy gives the --strategy flag priority over RINHA_EXEC_STRATEGY,
// mirroring the reference's EnvVarExecutionStrategy.cpp for the environment
// variable case.
func resolveStrategy() (rinha.Strategy, error) {
	env := strategyFlag
	if env == "" {
		env = os.Getenv("RINHA_EXEC_STRATEGY")
	}
	strategy, err := rinha.ResolveStrategy(env)
	if err != nil {
		return 0, fmt.Errorf("invalid execution strategy: %w", err)
	}
	return strategy, nil
}

// exitError carries a process exit code up through cobra's RunE chain
// without printing err.Error() again (the diagnostic was already printed).
type exitError struct{ code int }

func (e exitError) Error() string { return "" }

// ExitCode extracts the process exit code from an error returned by
// Execute, defaulting to 1 for any other non-nil error (e.g. a flag parse
// failure) and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(exitError); ok {
		return ee.code
	}
	return 1
}

// Main runs the CLI with os.Args[1:] and returns a process exit code,
// exposed at package level so testscript.RunMain can register "rinha" as an
// in-process subcommand the way cmd/cue/cmd does for "cue".
func Main() int {
	root := NewRootCmd()
	root.SetArgs(os.Args[1:])
	err := root.Execute()
	if err != nil && err.Error() != "" {
		fmt.Fprintln(os.Stderr, err)
	}
	return ExitCode(err)
}
