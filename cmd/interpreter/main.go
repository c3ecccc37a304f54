// Command interpreter runs scripts or starts an interactive REPL.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/bcheidemann/interpreter"
)

const (
	appName     = "interpreter"
	historyFile = ".interpreter_history"
	prompt      = "==> "
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(interpreter.Version)
	case "-h", "--help", "help":
		usage()
	default:
		// bare file path is a shorthand for "run"
		if _, err := os.Stat(cmd); err == nil {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`interpreter %s

Usage:
  %s run <file> [--] [args...]   Run a script.
  %s repl                        Start the REPL (default with no arguments).
  %s version                     Print the version.

`, interpreter.Version, appName, appName, appName)
}

// seedArgs binds positional script arguments as ARG0..ARGn, coercing each
// to a number when it parses as one.
func seedArgs(env *interpreter.Env, argv []string) {
	for i, a := range argv {
		name := fmt.Sprintf("ARG%d", i)
		if f, err := strconv.ParseFloat(a, 32); err == nil {
			env.Assign(name, interpreter.Num(float32(f)))
			continue
		}
		env.Assign(name, interpreter.Str(a))
	}
}

/* ---------- run ---------- */

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file> [--] [args...]\n", appName)
		return 2
	}

	file := args[0]
	argv := args[1:]
	if len(argv) > 0 && argv[0] == "--" {
		argv = argv[1:]
	}

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	ip := interpreter.NewInterpreter()
	seedArgs(ip.Environment(), argv)

	if err := ip.RunSource(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, interpreter.WrapErrorWithSource(err, string(src)).Error())
		return 1
	}
	return 0
}

/* ---------- repl ---------- */

func cmdRepl() int {
	interpreter.EnableColor = true
	fmt.Printf("interpreter %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", interpreter.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := interpreter.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, interpreter.Red(err.Error()))
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		// an eval error aborts this line only; the environment survives
		if err := ip.RunSource(line); err != nil {
			fmt.Fprintln(os.Stderr, interpreter.Red(interpreter.WrapErrorWithSource(err, line).Error()))
			continue
		}
		ln.AppendHistory(line)
	}
}
