package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/cmd/tone"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/spf13/cobra"
)

var openSpeaker = func(opts tone.Options) (tone.Player, error) {
	s, err := tone.OpenSpeaker(opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type PlayParams struct {
	Text    []string `pos:"true" optional:"true" help:"Text to play. If none provided, reads lines from stdin."`
	Morse   bool     `short:"m" help:"Treat the input as Morse code instead of text."`
	WPM     float64  `short:"w" optional:"true" help:"Words per minute (overrides config, default 20)."`
	Freq    float64  `short:"f" optional:"true" help:"Tone frequency in Hz (overrides config, default 700)."`
	Backend string   `short:"b" optional:"true" help:"Playback backend (overrides config, default auto)." alts:"auto,speaker,beep,lamp"`
	Bell    bool     `long:"bell" help:"Ring the terminal bell with each tone of the lamp backend."`
	Config  string   `long:"config" optional:"true" help:"Path to the config file."`
	Verbose bool     `short:"v" help:"Enable debug logging."`
}

func PlayCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:   "play",
		Short: "Play text as Morse code tones",
		Long: `Encode text and play it as Morse code.

Backends: speaker (audio device, requires CGO on Linux), beep (system beeper),
lamp (terminal lamp). auto uses the speaker and falls back to the lamp.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			common.SetupLogging(os.Stderr, params.Verbose)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := runPlay(ctx, params, os.Stdin, os.Stdout); err != nil {
				fail("play", err)
			}
		},
	}.ToCobra()
}

func openPlayer(cfg common.Config, bell bool, stdout io.Writer) (tone.Player, error) {
	opts := toneOptions(cfg)
	switch cfg.Backend {
	case "speaker":
		return openSpeaker(opts)
	case "beep":
		return tone.NewBeeper(opts), nil
	case "lamp":
		return tone.NewLamp(stdout, bell), nil
	case "auto", "":
		p, err := openSpeaker(opts)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, tone.ErrAudioUnavailable) {
			return nil, err
		}
		slog.Warn("audio unavailable, using terminal lamp and bell", "error", err)
		return tone.NewLamp(stdout, true), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func runPlay(ctx context.Context, params *PlayParams, stdin io.Reader, stdout io.Writer) error {
	cfg, err := settings(params.Config, params.WPM, params.Freq, params.Backend)
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

	player, err := openPlayer(cfg, params.Bell, stdout)
	if err != nil {
		return err
	}
	defer player.Close()

	leadIn := time.Duration(cfg.LeadInMs) * time.Millisecond
	for _, input := range inputs {
		code := morseOf(input, params.Morse)
		fmt.Fprintln(stdout, code)

		tl, err := scheduler.Play(player, code, player.Now()+leadIn)
		if err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
		slog.Debug("scheduled", "tones", len(tl.Events), "start", tl.Start, "end", tl.End, "unit", tl.Unit)

		if err := player.Wait(ctx); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
		if _, ok := player.(*tone.Lamp); ok {
			fmt.Fprintln(stdout)
		}
	}
	return nil
}
