package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'persian.cli'
func tracer() tracing.Trace {
	return tracing.Select("persian.cli")
}

// trace keys of the packages involved in a conversion
var traceKeys = []string{"persian.cli", "persian.shaper", "persian.charmap"}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	commando.
		SetExecutableName("ptconv").
		SetVersion("v0.1.0").
		SetDescription("Shape Persian text for left-to-right only text surfaces.\n" +
			"Settings are read from PTCONV_* environment variables; flags override them.")

	commando.
		Register("convert").
		SetDescription("Convert text (or standard input) and print the result.").
		SetShortDescription("convert text").
		AddArgument("text", "text to convert; - reads standard input", "-").
		AddFlag("direction,d", "direction of the target surface: ltr|rtl", commando.String, "-").
		AddFlag("digits,D", "digit set: persian|arabic", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "-").
		AddFlag("no-keyboard,k", "do not map US keyboard keys to Persian letters", commando.Bool, nil).
		AddFlag("no-ligatures,L", "do not substitute ligatures", commando.Bool, nil).
		AddFlag("no-nfc,N", "do not normalize input to NFC", commando.Bool, nil).
		AddFlag("codepoints,c", "print code points of the result", commando.Bool, nil).
		SetAction(runConvertCommand)

	commando.
		Register("repl").
		SetDescription("Convert lines interactively. Type :help for commands.").
		SetShortDescription("interactive conversion").
		AddFlag("direction,d", "direction of the target surface: ltr|rtl", commando.String, "-").
		AddFlag("digits,D", "digit set: persian|arabic", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "-").
		AddFlag("no-keyboard,k", "do not map US keyboard keys to Persian letters", commando.Bool, nil).
		AddFlag("no-ligatures,L", "do not substitute ligatures", commando.Bool, nil).
		AddFlag("no-nfc,N", "do not normalize input to NFC", commando.Bool, nil).
		AddFlag("codepoints,c", "print code points of each result", commando.Bool, nil).
		SetAction(runReplCommand)

	commando.
		Register("table").
		SetDescription("Print the character map used for conversion.").
		SetShortDescription("print character map").
		AddFlag("digits,D", "digit set: persian|arabic", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "-").
		AddFlag("no-keyboard,k", "leave out US keyboard keys", commando.Bool, nil).
		SetAction(runTableCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
