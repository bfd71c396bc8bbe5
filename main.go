package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/jcgregorio/logger"
	"github.com/peterh/liner"
	"github.com/takoeight0821/fredlang/internal/driver"
	"github.com/takoeight0821/fredlang/internal/value"
	"github.com/urfave/cli/v2"
)

var defaultHistory = filepath.Join(xdg.DataHome, "fredlang", ".fred_history")

// Flags holds the command line options.
type Flags struct {
	InputPath  string
	History    string
	Verbose    bool
	DumpTokens bool
	DumpAST    bool
}

func (flags *Flags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "input file path",
			Destination: &flags.InputPath,
		},
		&cli.StringFlag{
			Name:        "history",
			Value:       defaultHistory,
			Usage:       "REPL history file",
			Destination: &flags.History,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log every stage",
			Destination: &flags.Verbose,
		},
		&cli.BoolFlag{
			Name:        "dump-tokens",
			Usage:       "print the tokens before evaluation",
			Destination: &flags.DumpTokens,
		},
		&cli.BoolFlag{
			Name:        "dump-ast",
			Usage:       "print the expression tree before evaluation",
			Destination: &flags.DumpAST,
		},
	}
}

func main() {
	var flags Flags
	app := &cli.App{
		Name:  "fred",
		Usage: "Evaluate fredlang expressions from a file or an interactive prompt.",
		Flags: flags.AsCliFlags(),
		Action: func(c *cli.Context) error {
			log := driver.NewLogger(os.Stderr, flags.Verbose)
			runner := newRunner(flags, log)

			if flags.InputPath == "" {
				return RunPrompt(runner, flags.History, log)
			}
			return RunFile(runner, flags.InputPath, os.Stdout)
		},
	}

	if err := app.Run(os.Args); err != nil {
		for _, err := range driver.Diagnostics(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRunner(flags Flags, log *logger.Logger) *driver.Runner {
	r := driver.NewRunner(log)
	if flags.DumpTokens {
		r.DumpTokens(os.Stdout)
	}
	if flags.DumpAST {
		r.AddPass(driver.Dump{W: os.Stdout})
	}
	return r
}

func RunPrompt(r *driver.Runner, history string, log *logger.Logger) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			log.Errorf("cannot create history directory: %v", err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				log.Errorf("cannot write history: %v", err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			log.Errorf("cannot read history: %v", err)
		}
	}

	red := color.New(color.FgRed)
	for {
		input, err := line.Prompt("> ")
		if promptDone(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if err := evaluate(r, input, os.Stdout); err != nil {
			for _, err := range driver.Diagnostics(err) {
				red.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

// promptDone reports whether err ends the session: Ctrl-D or Ctrl-C.
func promptDone(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}

func RunFile(r *driver.Runner, path string, w io.Writer) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return evaluate(r, string(bytes), w)
}

// evaluate runs source and writes the rendered value to w.
func evaluate(r *driver.Runner, source string, w io.Writer) error {
	v, err := r.EvaluateSource(source)
	if err != nil {
		return err
	}

	s, err := value.Wrap(v).Render()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
