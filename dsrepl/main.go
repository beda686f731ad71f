package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	dsc "github.com/szmathias/dscontainers"
	"github.com/szmathias/dscontainers/hashmap"
	"github.com/szmathias/dscontainers/hashset"

	"github.com/emirpasic/gods/sets/treeset"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the dscontainers authors

*/

// tracer traces with key 'dsc.repl'.
func tracer() tracing.Trace {
	return tracing.Select("dsc.repl")
}

// main() starts an interactive CLI where users create named string sets
// and combine them with set algebra. It is intended as a sandbox for
// experimenting with the hashset/hashmap packages.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the dscontainers playground")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("dsc> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp, err := newIntp(repl)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

// Intp is our interpreter object. Named sets live in a hashmap from this
// module; the treeset keeps set names sorted for display.
type Intp struct {
	repl  *readline.Instance
	sets  *hashmap.Map[string, *hashset.Set[string]]
	names *treeset.Set
	lexer *lexer
}

func newIntp(repl *readline.Instance) (*Intp, error) {
	sets, err := hashmap.New[string, *hashset.Set[string]](dsc.StringHash, dsc.Equals[string])
	if err != nil {
		return nil, err
	}
	lx, err := newLexer()
	if err != nil {
		return nil, err
	}
	return &Intp{
		repl:  repl,
		sets:  sets,
		names: treeset.NewWithStringComparator(),
		lexer: lx,
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Exec(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Exec tokenizes and executes a single command line.
func (intp *Intp) Exec(line string) (bool, error) {
	words, err := intp.lexer.Tokenize(line)
	if err != nil {
		return false, err
	}
	if len(words) == 0 {
		return false, nil
	}
	cmd, args := words[0], words[1:]
	tracer().Debugf("command %q with %d argument(s)", cmd, len(args))
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.help()
		return false, nil
	case "new":
		return false, intp.cmdNew(args)
	case "add":
		return false, intp.cmdAdd(args)
	case "rm":
		return false, intp.cmdRm(args)
	case "show":
		return false, intp.cmdShow(args)
	case "list":
		return false, intp.cmdList()
	case "union", "inter", "diff":
		return false, intp.cmdAlgebra(cmd, args)
	case "subset":
		return false, intp.cmdSubset(args)
	}
	return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
}

func (intp *Intp) help() {
	pterm.Info.Println(`Commands:
  new <set>                     create an empty set
  add <set> <elem> …            add elements
  rm <set> <elem>               remove an element
  show <set>                    print the members of a set
  list                          print all set names
  union|inter|diff <a> <b> -> <c>   set algebra into a fresh set c
  subset <a> <b>                is a ⊆ b ?
  quit                          leave`)
}

func (intp *Intp) lookup(name string) (*hashset.Set[string], error) {
	if s, ok := intp.sets.Get(name); ok {
		return s, nil
	}
	return nil, fmt.Errorf("no set named %q", name)
}

func (intp *Intp) define(name string, s *hashset.Set[string]) {
	intp.sets.Put(name, s)
	intp.names.Add(name)
}

func (intp *Intp) cmdNew(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: new <set>")
	}
	if intp.sets.Contains(args[0]) {
		return fmt.Errorf("set %q already exists", args[0])
	}
	s, err := hashset.New[string](dsc.StringHash, dsc.Equals[string])
	if err != nil {
		return err
	}
	intp.define(args[0], s)
	pterm.Info.Printf("created %s\n", args[0])
	return nil
}

func (intp *Intp) cmdAdd(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add <set> <elem> …")
	}
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	added := 0
	for _, elem := range args[1:] {
		if s.AddCheck(elem) {
			added++
		}
	}
	pterm.Info.Printf("%s: %d new, size %d\n", args[0], added, s.Size())
	return nil
}

func (intp *Intp) cmdRm(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rm <set> <elem>")
	}
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	if err := s.Remove(args[1]); err != nil {
		return fmt.Errorf("%q is not in %s", args[1], args[0])
	}
	pterm.Info.Printf("%s: size %d\n", args[0], s.Size())
	return nil
}

func (intp *Intp) cmdShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show <set>")
	}
	s, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	keys := s.Keys()
	pterm.Info.Printf("%s = { %s }\n", args[0], strings.Join(keys, ", "))
	return nil
}

func (intp *Intp) cmdList() error {
	it := intp.names.Iterator()
	names := make([]string, 0, intp.names.Size())
	for it.Next() {
		names = append(names, it.Value().(string))
	}
	pterm.Info.Printf("%d set(s): %s\n", len(names), strings.Join(names, ", "))
	return nil
}

func (intp *Intp) cmdAlgebra(op string, args []string) error {
	// union a b -> c
	if len(args) != 4 || args[2] != "->" {
		return fmt.Errorf("usage: %s <a> <b> -> <c>", op)
	}
	a, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	b, err := intp.lookup(args[1])
	if err != nil {
		return err
	}
	var result *hashset.Set[string]
	switch op {
	case "union":
		result, err = hashset.Union(a, b)
	case "inter":
		result, err = hashset.Intersection(a, b)
	case "diff":
		result, err = hashset.Difference(a, b)
	}
	if err != nil {
		return err
	}
	intp.define(args[3], result)
	pterm.Info.Printf("%s = %s(%s, %s), size %d\n", args[3], op, args[0], args[1], result.Size())
	return nil
}

func (intp *Intp) cmdSubset(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: subset <a> <b>")
	}
	a, err := intp.lookup(args[0])
	if err != nil {
		return err
	}
	b, err := intp.lookup(args[1])
	if err != nil {
		return err
	}
	if hashset.IsSubset(a, b) {
		pterm.Info.Printf("%s ⊆ %s\n", args[0], args[1])
	} else {
		pterm.Info.Printf("%s ⊄ %s\n", args[0], args[1])
	}
	return nil
}
