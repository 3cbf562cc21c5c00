package main

// This is an evaluator for Lox expressions written in Go.

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/letung3105/lox/glox/internal/history"
	"github.com/letung3105/lox/glox/internal/lox"
)

// mode selects what run does with a parsed script.
type mode int

const (
	modeEval mode = iota
	modeTokens
	modeAst
)

type driver struct {
	mode        mode
	opts        *lox.Options
	reporter    lox.Reporter
	interpreter *lox.Interpreter
	output      io.Writer
}

func main() {
	var (
		tokens      = flag.Bool("tokens", false, "print the tokens instead of evaluating")
		ast         = flag.Bool("ast", false, "print the syntax tree instead of evaluating")
		maxNesting  = flag.Int("max-nesting", lox.DefaultMaxNesting, "deepest nesting of groupings and unary operators")
		maxDepth    = flag.Int("max-depth", lox.DefaultMaxEvalDepth, "deepest tree the evaluator walks")
		historyPath = flag.String("history", "", "file recording the lines entered in the prompt")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: glox [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(64)
	}

	d := driver{
		opts:     &lox.Options{MaxNesting: *maxNesting, MaxEvalDepth: *maxDepth},
		reporter: lox.NewSimpleReporter(os.Stderr),
		output:   os.Stdout,
	}
	d.interpreter = lox.NewInterpreter(d.reporter, d.opts)
	switch {
	case *tokens:
		d.mode = modeTokens
	case *ast:
		d.mode = modeAst
	}

	if len(args) != 1 {
		exitOnError(d.runPrompt(os.Stdin, *historyPath), 1)
	} else {
		d.runFile(args[0])
	}
}

func (d *driver) run(script string) {
	scanner := lox.NewScanner([]rune(script), d.reporter)
	tokens := scanner.Scan()
	if d.mode == modeTokens {
		for _, tok := range tokens {
			fmt.Fprintln(d.output, tok)
		}
		return
	}
	if d.reporter.HadError() {
		return
	}

	parser := lox.NewParser(tokens, d.reporter, d.opts)
	expr := parser.Parse()
	if d.reporter.HadError() {
		return
	}
	if d.mode == modeAst {
		printer := lox.AstPrinter{}
		fmt.Fprintln(d.output, printer.Print(expr))
		return
	}
	d.interpreter.Interpret(expr, d.output)
}

// Run the interpreter in REPL mode. The history store is closed before the
// read error, if any, is returned.
func (d *driver) runPrompt(input io.Reader, historyPath string) error {
	var store *history.Store
	if historyPath != "" {
		var err error
		if store, err = history.Open(historyPath); err != nil {
			return err
		}
		defer store.Close()
	}

	s := bufio.NewScanner(input)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(d.output, "> ")
		if !s.Scan() {
			break
		}
		line := s.Text()
		if line == ":history" {
			d.printHistory(store)
			continue
		}
		if store != nil {
			if err := store.Append(line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		d.run(line)
		d.reporter.Reset()
	}
	return s.Err()
}

func (d *driver) printHistory(store *history.Store) {
	if store == nil {
		fmt.Fprintln(os.Stderr, "history is disabled, start with -history <file>")
		return
	}
	lines, err := store.Last(20)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, line := range lines {
		fmt.Fprintln(d.output, line)
	}
}

// Run the given file as script
func (d *driver) runFile(fpath string) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	d.run(string(bytes))
	exitIf(d.reporter.HadError(), 65)
	exitIf(d.reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
