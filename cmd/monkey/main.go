// Command monkey is the CLI and REPL front end for the interpreter: run a
// script, bench it, dump its tokens or AST, or drop into an interactive
// session. Argument parsing and I/O wrapping follow urfave/cli/v2 and
// ztrue/tracerr respectively; the interactive loop is driven by peterh/liner.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/monkeylang/monkey/internal/config"
	"github.com/monkeylang/monkey/internal/object"
	"github.com/monkeylang/monkey/internal/repl"
	"github.com/monkeylang/monkey/internal/runner"
)

const usage = "Usage: monkey [run <path> | bench <path> | --tokens <path> | --ast <path>]"

func main() {
	app := &cli.App{
		Name:                   "monkey",
		Usage:                  usage,
		UsageText:              usage,
		Action:                 runRepl,
		ExitErrHandler:         exitErrHandler,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "repl",
				Usage:     "start the interactive session",
				ArgsUsage: " ",
				Action:    func(c *cli.Context) error { return runRepl(c) },
			},
			{
				Name:      "run",
				Usage:     "execute a script file",
				ArgsUsage: "<path>",
				Action:    func(c *cli.Context) error { return runFile(c, false) },
			},
			{
				Name:      "bench",
				Usage:     "execute a script file and report its evaluation time",
				ArgsUsage: "<path>",
				Action:    func(c *cli.Context) error { return runFile(c, true) },
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tokens", Usage: "dump the token stream of <path>"},
			&cli.StringFlag{Name: "ast", Usage: "dump the parsed AST of <path>"},
		},
	}

	app.Run(os.Args)
}

// usageError marks an argument-shape mistake, which exits 2 rather than 1.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) ExitCode() int { return 2 }

// exitErrHandler is the sole point that translates a returned error into a
// process exit: usage mistakes exit 2, everything else (including
// cli.Exit-wrapped errors from the file/token/ast paths) exits 1.
func exitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if ue, ok := err.(usageError); ok {
		fmt.Fprintln(os.Stderr, ue.Error())
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(ue.ExitCode())
	}
	if ec, ok := err.(cli.ExitCoder); ok {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(ec.ExitCode())
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func runRepl(c *cli.Context) error {
	if path := c.String("tokens"); path != "" {
		return dumpTokens(path)
	}
	if path := c.String("ast"); path != "" {
		return dumpAST(path)
	}

	cfg, err := config.Load()
	if err != nil {
		return tracerr.Wrap(err)
	}

	session := repl.NewSession(os.Stdout)

	if cfg.Prelude != "" {
		src, err := os.ReadFile(cfg.Prelude)
		if err != nil {
			return tracerr.Wrap(err)
		}
		program, _, rtErr := session.LoadPrelude(string(src))
		if len(program.Errors) > 0 {
			fmt.Fprintf(os.Stderr, "Parse errors in %s:\n", cfg.Prelude)
			fmt.Fprintln(os.Stderr, runner.FormatParseErrors(program.Errors))
		} else if rtErr != nil {
			fmt.Fprintln(os.Stderr, rtErr.StackTrace())
		}
	}

	historyPath := cfg.HistoryFile
	if historyPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyPath = filepath.Join(home, ".monkey_history")
		}
	}

	return runInteractive(session, historyPath)
}

func runInteractive(session *repl.Session, historyPath string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if historyPath == "" {
			return
		}
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	prompt := ">> "
	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			prompt = ">> "
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return tracerr.Wrap(err)
		}

		outcome := session.HandleLine(input)
		if outcome.Quit {
			return nil
		}
		if outcome.Empty {
			if strings.TrimSpace(input) != "" {
				prompt = ".. "
			}
			continue
		}
		prompt = ">> "
		line.AppendHistory(input)
		fmt.Println(outcome.Text)
	}
}

func runFile(c *cli.Context, bench bool) error {
	path := c.Args().First()
	if path == "" {
		return usageError{fmt.Errorf("%s requires a path", c.Command.Name)}
	}

	src, err := readFile(path)
	if err != nil {
		return err
	}

	env := object.NewEnvironment()
	started := time.Now()
	program, val, rtErr := runner.RunSource(src, env, os.Stdout)
	elapsed := time.Since(started).Seconds() * 1000

	if len(program.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Parse errors in %s:\n", path)
		fmt.Fprintln(os.Stderr, runner.FormatParseErrors(program.Errors))
		return cli.Exit("", 1)
	}
	if rtErr != nil {
		fmt.Fprintf(os.Stderr, "Runtime error in %s:\n", path)
		fmt.Fprintln(os.Stderr, rtErr.StackTrace())
		return cli.Exit("", 1)
	}

	fmt.Println(val.Inspect())
	if bench {
		fmt.Fprintln(os.Stderr, runner.FormatExecutionTime(elapsed))
	}
	return nil
}

func dumpTokens(path string) error {
	src, err := readFile(path)
	if err != nil {
		return err
	}
	fmt.Println(runner.FormatTokens(runner.Tokenize(src)))
	return nil
}

func dumpAST(path string) error {
	src, err := readFile(path)
	if err != nil {
		return err
	}
	program := runner.Parse(src)
	if len(program.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Parse errors in %s:\n", path)
		fmt.Fprintln(os.Stderr, runner.FormatParseErrors(program.Errors))
		return cli.Exit("", 1)
	}
	fmt.Println(runner.DumpAST(program))
	return nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
		return "", cli.Exit("", 1)
	}
	return string(data), nil
}
