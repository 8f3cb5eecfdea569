package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type TableParams struct {
	JSON bool `long:"json" help:"Output as JSON"`
}

func TableCmd() *cobra.Command {
	return boa.CmdT[TableParams]{
		Use:         "table",
		Aliases:     []string{"chart"},
		Short:       "Print the Morse code table",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TableParams, cmd *cobra.Command, args []string) {
			if err := runTable(params, os.Stdout); err != nil {
				fail("table", err)
			}
		},
	}.ToCobra()
}

type tableEntryJSON struct {
	Char  string `json:"char"`
	Code  string `json:"code"`
	Units int    `json:"units"`
}

// codeUnits returns how many base units a code sounds for, including the
// gaps between its elements.
func codeUnits(code string) int {
	if code == "/" {
		return 7
	}
	units := 0
	for _, r := range code {
		switch r {
		case morse.Dot:
			units += 2
		case morse.Dash:
			units += 4
		}
	}
	return units - 1
}

func displayChar(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}

func runTable(params *TableParams, stdout io.Writer) error {
	entries := morse.Table().Entries()

	if params.JSON {
		out := make([]tableEntryJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, tableEntryJSON{Char: string(e.Char), Code: e.Code, Units: codeUnits(e.Code)})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(getTermWidth())
	t.AppendHeader(table.Row{"Char", "Code", "Units"})
	for _, e := range entries {
		code := strings.NewReplacer(".", "·", "-", "−").Replace(e.Code)
		t.AppendRow(table.Row{displayChar(e.Char), code, codeUnits(e.Code)})
	}
	t.Render()
	return nil
}
