// Command kiwiscript is a minimal driver for the evaluator, shaped after
// the teacher's cmd/able layout. It is not a parser front end (spec §1's
// Non-goals place lexing/parsing out of scope): it loads an options file
// and runs a small in-process sample program to exercise the evaluator
// end to end, printing the result and exiting per spec §6's exit-code
// contract.
package main

import (
	"fmt"
	"os"

	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/config"
	"github.com/kelidra/kiwiscript/internal/interp"
)

const cliVersion = "kiwiscript-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			printUsage()
			return 0
		case "--version", "-V", "version":
			fmt.Fprintln(os.Stdout, cliVersion)
			return 0
		}
	}

	configPath := "kiwiscript.yml"
	if len(args) > 0 {
		configPath = args[0]
	}
	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	i := interp.New(opts)
	program := sampleProgram()

	if _, err := i.Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %v\n", err)
		return 1
	}
	if requested, code := i.ExitRequested(); requested {
		return code
	}
	return 0
}

// sampleProgram builds a tiny AST by hand ("println 1 + 2") to smoke-test
// the evaluator without a lexer/parser in the loop.
func sampleProgram() *ast.Program {
	pos := ast.Position{Line: 1, Column: 1, File: "<builtin>"}
	expr := ast.NewBinaryExpression(pos, ast.OpAdd, ast.NewIntegerLiteral(pos, 1), ast.NewIntegerLiteral(pos, 2))
	stmt := ast.NewPrintStatement(pos, expr, true)
	return ast.NewProgram(pos, []ast.Statement{stmt}, true)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  kiwiscript [config.yml]")
	fmt.Fprintln(os.Stderr, "  kiwiscript --version")
}
