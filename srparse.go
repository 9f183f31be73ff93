// Package srparse contains a CLI-driven engine for reading arithmetic
// expressions and printing their values until the user quits. Expressions are
// parsed by the table-driven shift-reduce parser in package lr.
package srparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dekarrin/rosed"
	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/internal/input"
	"github.com/dekarrin/srparse/internal/srerrors"
	"github.com/dekarrin/srparse/lr"
)

const consoleOutputWidth = 80

const helpText = `Enter an arithmetic expression to evaluate it. Expressions are made of
whole numbers, +, *, and parentheses.

Commands:
  HELP  show this message
  TREE  toggle printing the parse tree of each expression
  QUIT  exit (EXIT also works)`

// Options control how an Engine is set up.
type Options struct {
	// TablePath is the file to load the action table from. If empty, the
	// built-in arithmetic table is used.
	TablePath string

	// ForceDirect disables readline even when attached to a terminal.
	ForceDirect bool

	// ShowTree prints the parse tree after each value.
	ShowTree bool

	// Trace logs every parser step at debug level.
	Trace bool
}

// Engine contains the things needed to evaluate expressions from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	calc        *calc.Calculator
	in          input.LineReader
	out         *bufio.Writer
	forceDirect bool
	showTree    bool
	running     bool
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and
// a buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used.
func New(inputStream io.Reader, outputStream io.Writer, opts Options) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	c, err := loadCalculator(opts.TablePath)
	if err != nil {
		return nil, err
	}

	if opts.Trace {
		c.RegisterTraceListener(func(s string) {
			log.Debug(s)
		})
	}

	eng := &Engine{
		calc:        c,
		out:         bufio.NewWriter(outputStream),
		forceDirect: opts.ForceDirect,
		showTree:    opts.ShowTree,
	}

	useReadline := !opts.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		eng.in, err = input.NewInteractiveReader("> ")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

func loadCalculator(tablePath string) (*calc.Calculator, error) {
	if tablePath == "" {
		return calc.New()
	}

	table, err := lr.LoadTable(tablePath)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	log.Debug("loaded action table", "file", tablePath, "states", table.Len())

	c, err := calc.NewWithTable(table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tablePath, err)
	}
	return c, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close line reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading expressions from the input stream and printing
// their values until the QUIT command is received or input ends.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "srparse calculator\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "==================\n"
	introMsg += "Type HELP for help.\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("get user input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		switch strings.ToUpper(line) {
		case "QUIT", "EXIT":
			eng.running = false
			continue
		case "HELP":
			if err := eng.write(helpText + "\n"); err != nil {
				return err
			}
			continue
		case "TREE":
			eng.showTree = !eng.showTree
			state := "off"
			if eng.showTree {
				state = "on"
			}
			if err := eng.write("Parse tree output is now " + state + ".\n"); err != nil {
				return err
			}
			continue
		}

		if err := eng.write(eng.evalLine(line) + "\n"); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

// evalLine evaluates one expression and gives the text to show for it.
func (eng *Engine) evalLine(line string) string {
	tree, err := eng.calc.Tree(line)
	if err != nil {
		var synErr *calc.SyntaxError
		if errors.As(err, &synErr) {
			// the cursor line must not be re-wrapped
			return srerrors.UserMessage(srerrors.WrapInput(err, synErr.FullMessage(), ""))
		}

		log.Error("evaluation failed", "expr", line, "err", err)
		msg := srerrors.UserMessage(srerrors.WrapInputf(err, "Could not evaluate that: %s", err.Error()))
		return rosed.Edit(msg).Wrap(consoleOutputWidth).String()
	}

	if eng.showTree {
		return tree.Data + "\n" + tree.String()
	}
	return tree.Data
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
