package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/knitlang/knit/eval"
	"github.com/knitlang/knit/form"
	"github.com/knitlang/knit/rewrite"
	"github.com/knitlang/knit/sexp"
)

// main starts an interactive CLI where users may enter knit expressions.
// Every line is parsed, rewritten into the primitive target vocabulary,
// printed, and finally evaluated in a standard environment.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to knit")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("knit> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl: repl,
		env:  eval.StandardEnvironment(),
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*initf)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	env  *eval.Environment
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
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
		if err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval rewrites and evaluates one input line of knit forms.
func (intp *Intp) Eval(line string) error {
	forms, err := sexp.Parse(line)
	if err != nil {
		return err
	}
	rewritten, err := rewrite.Block(forms)
	if err != nil {
		return err
	}
	for _, f := range rewritten {
		intp.printForm(f)
		result, err := eval.Eval(f, intp.env)
		if err != nil {
			return err
		}
		pterm.Info.Println(eval.Repr(result))
	}
	return nil
}

// printForm shows the rewritten form before evaluation, so users see what
// the engine actually produced.
func (intp *Intp) printForm(f form.Form) {
	if f == nil {
		pterm.Println("nil")
		return
	}
	pterm.Println("⟼  " + f.String())
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
