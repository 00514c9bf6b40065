package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/persian/internal/config"
	"github.com/npillmayer/persian/shape"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// mustConfig loads the environment configuration and applies the flags set
// on the command line. Flags which a command does not define are ignored.
func mustConfig(flags map[string]commando.FlagValue) config.Config {
	conf, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}
	if s, ok := flagString(flags, "direction"); ok {
		conf.Direction = s
	}
	if s, ok := flagString(flags, "digits"); ok {
		conf.Digits = s
	}
	if s, ok := flagString(flags, "trace"); ok {
		conf.Trace = s
	}
	if flagBool(flags, "no-keyboard") {
		conf.Keyboard = false
	}
	if flagBool(flags, "no-ligatures") {
		conf.Ligatures = false
	}
	if flagBool(flags, "no-nfc") {
		conf.NFC = false
	}
	setTraceLevel(conf.Trace)
	tracer().Debugf("configuration: %+v", conf)
	return conf
}

func mustConverter(conf config.Config) *shape.Converter {
	conv, err := conf.Converter()
	if err != nil {
		fatalf("%v", err)
	}
	return conv
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "", "error":
	default:
		fatalf("invalid trace level: %s", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// flagString returns the value of a string flag, if it is present and not
// set to the placeholder "-".
func flagString(flags map[string]commando.FlagValue, name string) (string, bool) {
	flag, ok := flags[name]
	if !ok {
		return "", false
	}
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" || s == "" {
		return "", false
	}
	return s, true
}

func flagBool(flags map[string]commando.FlagValue, name string) bool {
	flag, ok := flags[name]
	if !ok {
		return false
	}
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

// formatCodepoints renders s as a list of U+XXXX values.
func formatCodepoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}

func printResult(out string, codepoints bool) {
	pterm.Println(out)
	if codepoints {
		pterm.Println(pterm.FgGray.Sprint(formatCodepoints(out)))
	}
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
