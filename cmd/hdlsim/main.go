// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hdlsim parses a circuit description, simulates it over its input
// traces and prints the recorded output traces.
//
//	hdlsim [-v] [-i] file
//
// With -v the environment is printed after initialization and after every
// cycle. With -i the final environment can be probed interactively:
// expressions typed at the prompt are evaluated against the signal values
// of the last cycle.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hdlsim/hdlsim"
	"github.com/peterh/liner"
)

const historyFile = ".hdlsim_history"

func main() {
	log.SetFlags(0)
	log.SetPrefix("hdlsim: ")

	verbose := flag.Bool("v", false, "print the environment after every cycle")
	interactive := flag.Bool("i", false, "probe the final environment interactively")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: hdlsim [-v] [-i] file")
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	c, err := hdlsim.ParseCircuit(string(src))
	if err != nil {
		log.Fatal(err)
	}

	var probe hdlsim.Probe
	if *verbose {
		probe = printState
	}
	env, err := c.Run(probe)
	if err != nil {
		log.Fatal(err)
	}
	for i := range c.SimOutputs {
		fmt.Println(c.SimOutputs[i].String())
	}

	if *interactive {
		repl(env)
	}
}

func printState(cycle int, state map[string]bool) {
	names := make([]string, 0, len(state))
	for n := range state {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Printf("cycle %d:\n", cycle)
	for _, n := range names {
		fmt.Printf("  %s = %s\n", n, bit(state[n]))
	}
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// repl evaluates expressions typed at the prompt against env until EOF,
// Ctrl-C or :quit.
func repl(env *hdlsim.Env) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil { // io.EOF or liner.ErrPromptAborted
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit":
			return
		}
		e, err := hdlsim.ParseExpr(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		v, err := hdlsim.Eval(e, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(bit(v))
		ln.AppendHistory(line)
	}
}
