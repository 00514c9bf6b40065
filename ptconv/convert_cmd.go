package main

import (
	"io"
	"os"
	"strings"

	"github.com/thatisuday/commando"
)

func runConvertCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conv := mustConverter(mustConfig(flags))
	text := args["text"].Value
	if text == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading standard input: %v", err)
		}
		text = strings.TrimRight(string(b), "\r\n")
	}
	tracer().Infof("converting %d bytes", len(text))
	printResult(conv.Convert(text), flagBool(flags, "codepoints"))
}
