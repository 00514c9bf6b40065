package main

import (
	"fmt"
	"strings"

	tslang "github.com/go-text/typesetting/language"
	"github.com/npillmayer/persian/charmap"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runTableCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conf := mustConfig(flags)
	m, err := conf.Map()
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Printf("Character map for %s (%s), %d entries\n", m.Language(), m.Script(), m.Len())
	data := [][]string{
		{"Key", "Name", "Script", "Isol", "Init", "Medi", "Fina", "Joins", "LTR", "Form key"},
	}
	for _, r := range m.Keys() {
		d, _ := m.Lookup(r)
		data = append(data, []string{
			fmt.Sprintf("%U", r),
			runenames.Name(r),
			fmt.Sprint(tslang.LookupScript(r)),
			glyphCode(d, charmap.Isolated),
			glyphCode(d, charmap.Initial),
			glyphCode(d, charmap.Medial),
			glyphCode(d, charmap.Final),
			formatJoining(d),
			fmt.Sprintf("%v", d.LeftToRight),
			fmt.Sprintf("%v", d.Contains(r)), // key is one of its own glyphs
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if ligs := m.Ligatures(); len(ligs) > 0 {
		pterm.Printf("%d ligatures:\n", len(ligs))
		for _, lig := range ligs {
			pterm.Printf("  %s -> %s\n", formatCodepoints(lig.Source), formatCodepoints(lig.Replacement))
		}
	}
}

func glyphCode(d charmap.Descriptor, f charmap.Form) string {
	return formatCodepoints(d.Glyph(f))
}

func formatJoining(d charmap.Descriptor) string {
	var sb strings.Builder
	if d.StickToPrevious {
		sb.WriteString("prev")
	}
	if d.StickToNext {
		if sb.Len() > 0 {
			sb.WriteString("+")
		}
		sb.WriteString("next")
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
