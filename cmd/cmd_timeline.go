package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type TimelineParams struct {
	Text   []string `pos:"true" optional:"true" help:"Text to schedule. If none provided, reads lines from stdin."`
	Morse  bool     `short:"m" help:"Treat the input as Morse code instead of text."`
	WPM    float64  `short:"w" optional:"true" help:"Words per minute (overrides config, default 20)."`
	Start  int      `short:"s" optional:"true" help:"Start offset of the first tone in milliseconds."`
	JSON   bool     `long:"json" help:"Output as JSON"`
	Config string   `long:"config" optional:"true" help:"Path to the config file."`
}

func TimelineCmd() *cobra.Command {
	return boa.CmdT[TimelineParams]{
		Use:         "timeline",
		Aliases:     []string{"schedule"},
		Short:       "Show when each tone of a message sounds",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TimelineParams, cmd *cobra.Command, args []string) {
			if err := runTimeline(params, os.Stdin, os.Stdout); err != nil {
				fail("timeline", err)
			}
		},
	}.ToCobra()
}

type timelineEventJSON struct {
	Element    string  `json:"element"`
	StartMs    float64 `json:"start_ms"`
	DurationMs float64 `json:"duration_ms"`
}

type timelineJSON struct {
	Morse  string              `json:"morse"`
	WPM    float64             `json:"wpm"`
	UnitMs float64             `json:"unit_ms"`
	EndMs  float64             `json:"end_ms"`
	Events []timelineEventJSON `json:"events"`
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatMillis(d time.Duration) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", millis(d)), "0"), ".") + "ms"
}

func elementName(e morse.ToneEvent, unit time.Duration) string {
	if e.Duration > unit {
		return "dash"
	}
	return "dot"
}

func runTimeline(params *TimelineParams, stdin io.Reader, stdout io.Writer) error {
	cfg, err := settings(params.Config, params.WPM, 0, "")
	if err != nil {
		return err
	}
	scheduler, err := morse.NewScheduler(cfg.WPM)
	if err != nil {
		return err
	}
	inputs, err := common.Inputs(params.Text, stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	start := time.Duration(params.Start) * time.Millisecond
	for _, input := range inputs {
		code := morseOf(input, params.Morse)
		tl := scheduler.Schedule(code, start)

		if params.JSON {
			out := timelineJSON{
				Morse:  code,
				WPM:    scheduler.Speed(),
				UnitMs: millis(tl.Unit),
				EndMs:  millis(tl.End),
				Events: []timelineEventJSON{},
			}
			for _, e := range tl.Events {
				out.Events = append(out.Events, timelineEventJSON{
					Element:    elementName(e, tl.Unit),
					StartMs:    millis(e.Start),
					DurationMs: millis(e.Duration),
				})
			}
			data, err := json.Marshal(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, string(data))
			continue
		}

		renderTimeline(stdout, code, scheduler.Speed(), tl)
	}
	return nil
}

func renderTimeline(w io.Writer, code string, wpm float64, tl morse.Timeline) {
	fmt.Fprintf(w, "%s\n%v wpm, unit %s\n", code, wpm, formatMillis(tl.Unit))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(getTermWidth())
	t.AppendHeader(table.Row{"#", "Element", "Start", "Duration", "Silence Before"})

	cursor := tl.Start
	for i, e := range tl.Events {
		silence := e.Start - cursor
		cursor = e.End()
		name := elementName(e, tl.Unit)
		colorFunc := text.FgGreen.Sprint
		if name == "dash" {
			colorFunc = text.FgYellow.Sprint
		}
		t.AppendRow(table.Row{
			i + 1,
			colorFunc(name),
			formatMillis(e.Start),
			formatMillis(e.Duration),
			formatMillis(silence),
		})
	}
	t.AppendFooter(table.Row{"", "End", formatMillis(tl.End), "", ""})
	t.Render()
}
