package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/persian/shape"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// Intp is our interpreter object
type Intp struct {
	conv       *shape.Converter
	repl       *readline.Instance
	codepoints bool
}

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conv := mustConverter(mustConfig(flags))
	repl, err := readline.New("fa > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	intp := &Intp{conv: conv, repl: repl, codepoints: flagBool(flags, "codepoints")}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
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
		if strings.HasPrefix(line, ":") {
			if quit := intp.execute(line); quit {
				break
			}
			continue
		}
		printResult(intp.conv.Convert(line), intp.codepoints)
	}
	pterm.Info.Println("Good bye!")
}

// execute runs an interpreter command and reports whether to quit.
func (intp *Intp) execute(cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":lig":
		if len(fields) > 1 {
			intp.conv.SetConvertLigature(fields[1] == "on")
		}
		pterm.Printf("ligatures: %v\n", intp.conv.ConvertLigature())
	case ":cp":
		intp.codepoints = !intp.codepoints
		pterm.Printf("code points: %v\n", intp.codepoints)
	case ":help":
		pterm.Println(":lig [on|off]  show or switch ligature substitution")
		pterm.Println(":cp            toggle printing of code points")
		pterm.Println(":quit          leave")
	default:
		tracer().Errorf("unknown command %s", fields[0])
	}
	return false
}
