package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/cmd/tone"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/spf13/cobra"
)

type WavParams struct {
	Text       []string `pos:"true" optional:"true" help:"Text to render. If none provided, reads lines from stdin."`
	Output     string   `short:"o" help:"Output WAV file."`
	Morse      bool     `short:"m" help:"Treat the input as Morse code instead of text."`
	WPM        float64  `short:"w" optional:"true" help:"Words per minute (overrides config, default 20)."`
	Freq       float64  `short:"f" optional:"true" help:"Tone frequency in Hz (overrides config, default 700)."`
	SampleRate int      `short:"r" optional:"true" help:"Sample rate in Hz (overrides config, default 44100)."`
	Config     string   `long:"config" optional:"true" help:"Path to the config file."`
	Verbose    bool     `short:"v" help:"Enable debug logging."`
}

func WavCmd() *cobra.Command {
	return boa.CmdT[WavParams]{
		Use:   "wav",
		Short: "Render Morse code tones to a WAV file",
		Long: `Encode text and render it as a mono 16-bit WAV file.

Multiple input lines are rendered one after another, separated by a word gap.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *WavParams, cmd *cobra.Command, args []string) {
			common.SetupLogging(os.Stderr, params.Verbose)
			if err := runWav(params, os.Stdin, os.Stdout); err != nil {
				fail("wav", err)
			}
		},
	}.ToCobra()
}

func runWav(params *WavParams, stdin io.Reader, stdout io.Writer) error {
	if params.Output == "" {
		return fmt.Errorf("an output file is required (-o)")
	}
	cfg, err := settings(params.Config, params.WPM, params.Freq, "")
	if err != nil {
		return err
	}
	if params.SampleRate != 0 {
		cfg.SampleRate = params.SampleRate
	}
	scheduler, err := morse.NewScheduler(cfg.WPM)
	if err != nil {
		return err
	}
	inputs, err := common.Inputs(params.Text, stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var codes []string
	for _, input := range inputs {
		if code := morseOf(input, params.Morse); code != "" {
			codes = append(codes, code)
		}
	}
	code := strings.Join(codes, " / ")

	renderer := tone.NewRenderer(toneOptions(cfg))
	tl, err := scheduler.Play(renderer, code, 0)
	if err != nil {
		return err
	}

	f, err := os.Create(params.Output)
	if err != nil {
		return err
	}
	if err := renderer.Encode(f, tl.End); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", params.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Debug("wav written", "path", params.Output, "samples", renderer.Samples(tl.End), "sampleRate", cfg.SampleRate)
	fmt.Fprintf(stdout, "Wrote %s (%d tones, %s)\n", params.Output, renderer.Len(), formatMillis(tl.End))
	return nil
}
