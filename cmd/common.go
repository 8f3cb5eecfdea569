package cmd

import (
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/cmd/tone"
	"github.com/gigurra/morsewave/pkg/morse"
	"golang.org/x/term"
)

func defaultParamEnricher() boa.ParamEnricher {
	return common.DefaultParamEnricher()
}

// settings loads the config file and applies non-zero flag overrides.
func settings(configPath string, wpm, freq float64, backend string) (common.Config, error) {
	if configPath == "" {
		configPath = common.ConfigPath()
	}
	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if wpm != 0 {
		cfg.WPM = wpm
	}
	if freq != 0 {
		cfg.Frequency = freq
	}
	if backend != "" {
		cfg.Backend = backend
	}
	return cfg, nil
}

func toneOptions(cfg common.Config) tone.Options {
	return tone.Options{
		Frequency:  cfg.Frequency,
		Volume:     cfg.Volume,
		SampleRate: cfg.SampleRate,
	}
}

// morseOf returns input as Morse code, encoding it unless it already is.
func morseOf(input string, isMorse bool) string {
	if isMorse {
		return input
	}
	return morse.Encode(input)
}

func getTermWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	if width, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && width > 0 {
		return width
	}
	return 120
}

func fail(name string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	os.Exit(1)
}
