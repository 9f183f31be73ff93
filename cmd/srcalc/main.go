/*
Srcalc evaluates arithmetic expressions with the srparse shift-reduce parser.

With no expression given, it starts an interactive session that reads one
expression per line from stdin and prints its value, until input ends or the
"QUIT" command is entered.

Usage:

	srcalc [flags]
	srcalc [flags] -e EXPRESSION

The flags are:

	-v, --version
		Give the current version of srparse and then exit.

	-e, --expr EXPRESSION
		Evaluate EXPRESSION, print its value, and exit instead of starting an
		interactive session.

	--tree
		Print the parse tree of each expression after its value.

	-t, --table FILE
		Load the action table from FILE instead of using the built-in one.
		The format is determined by the extension of FILE; it must be one of
		.json, .toml, .rezi, or .bin.

	--trace
		Log every step the parser takes. Implies --debug.

	--debug
		Enable debug logging.

	--no-color
		Do not use colors in log output.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dekarrin/srparse"
	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/internal/logger"
	"github.com/dekarrin/srparse/internal/version"
	"github.com/dekarrin/srparse/lr"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitEvalError indicates an unsuccessful program execution due to an
	// expression that could not be evaluated or a problem during the session.
	ExitEvalError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the calculator.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of srparse and then exit.")
	flagExpr    = pflag.StringP("expr", "e", "", "Evaluate the given expression and exit.")
	flagTree    = pflag.Bool("tree", false, "Print the parse tree of each expression.")
	flagTable   = pflag.StringP("table", "t", "", "Load the action table from the given file.")
	flagTrace   = pflag.Bool("trace", false, "Log every step the parser takes.")
	flagDebug   = pflag.Bool("debug", false, "Enable debug logging.")
	flagNoColor = pflag.Bool("no-color", false, "Do not use colors in log output.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments; quote the expression and give it with -e.\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	logger.Init("SRCALC", *flagDebug || *flagTrace, *flagNoColor)

	if pflag.Lookup("expr").Changed {
		returnCode = evalOnce(*flagExpr)
		return
	}

	eng, initErr := srparse.New(os.Stdin, os.Stdout, srparse.Options{
		TablePath:   *flagTable,
		ForceDirect: *flagDirect,
		ShowTree:    *flagTree,
		Trace:       *flagTrace,
	})
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	if err := eng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitEvalError
		return
	}
}

func evalOnce(expr string) int {
	var c *calc.Calculator
	var err error
	if *flagTable != "" {
		var table lr.Table
		table, err = lr.LoadTable(*flagTable)
		if err == nil {
			c, err = calc.NewWithTable(table)
		}
	} else {
		c, err = calc.New()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitInitError
	}

	if *flagTrace {
		c.RegisterTraceListener(func(s string) {
			log.Debug(s)
		})
	}

	tree, err := c.Tree(expr)
	if err != nil {
		var synErr *calc.SyntaxError
		if errors.As(err, &synErr) {
			fmt.Fprintf(os.Stderr, "%s\n", synErr.FullMessage())
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		}
		return ExitEvalError
	}

	fmt.Println(tree.Data)
	if *flagTree {
		fmt.Println(tree.String())
	}
	return ExitSuccess
}
