/*
Srtable inspects, checks, and converts srparse action tables.

Usage:

	srtable validate FILE...
	srtable convert [--to FORMAT] IN_FILE OUT_FILE
	srtable show [--derivations] FILE
	srtable parse FILE TOKEN...

The format of a table file is determined by its extension, which must be one
of .json, .toml, .rezi, or .bin.

The parse command runs the parser on the given tokens using a handler that
joins the data of every child with spaces. Each TOKEN is given as SYMBOL or
SYMBOL:DATA; a bare SYMBOL has itself as data. The end-of-input token is added
automatically.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/srparse/internal/logger"
	"github.com/dekarrin/srparse/internal/version"
	"github.com/dekarrin/srparse/lr"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	var noColor bool
	var debug bool

	root := &cobra.Command{
		Use:           "srtable",
		Short:         "Inspect, check, and convert srparse action tables",
		Version:       version.Current,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init("SRTABLE", debug, noColor)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Do not use colors in log output")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newValidateCommand(),
		newConvertCommand(),
		newShowCommand(),
		newParseCommand(),
	)

	return root
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that table files load and are well-formed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				t, err := lr.LoadTable(path)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK   %s: %d states, %d derivations\n", path, t.Len(), len(t.Derivations()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tables are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newConvertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert IN_FILE OUT_FILE",
		Short: "Convert a table file to another format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lr.LoadTable(args[0])
			if err != nil {
				return err
			}

			if to == "" {
				return lr.SaveTable(t, args[1])
			}

			f, err := lr.ParseFormat(to)
			if err != nil {
				return err
			}
			data, err := lr.EncodeTable(t, f)
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], data, 0644)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Output format (json, toml, or rezi); defaults to the one implied by OUT_FILE")

	return cmd
}

func newShowCommand() *cobra.Command {
	var derivations bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a table as a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lr.LoadTable(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			if derivations {
				fmt.Fprintln(cmd.OutOrStdout())
				for _, d := range t.Derivations() {
					fmt.Fprintln(cmd.OutOrStdout(), d.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&derivations, "derivations", false, "Also list every derivation the table reduces by")

	return cmd
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE TOKEN...",
		Short: "Parse tokens with a table and print the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lr.LoadTable(args[0])
			if err != nil {
				return err
			}

			p, err := lr.New(t, lr.Uniform(t, lr.Concat))
			if err != nil {
				return err
			}

			tree, err := p.Parse(tokensFromArgs(args[1:]))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}
}

// tokensFromArgs converts SYMBOL or SYMBOL:DATA arguments to tokens and adds
// the end token.
func tokensFromArgs(args []string) []lr.Token {
	toks := make([]lr.Token, 0, len(args)+1)
	for _, a := range args {
		sym, data, found := strings.Cut(a, ":")
		if !found || sym == "" {
			// a lone ":" is a symbol too
			sym, data = a, a
		}
		toks = append(toks, lr.NewToken(sym, data))
	}
	return append(toks, lr.EndToken())
}
