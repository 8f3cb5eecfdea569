package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/spf13/cobra"
)

var errInvalidMorse = errors.New("input contains characters other than '.', '-', '/' and whitespace")

type ValidateParams struct {
	Morse []string `pos:"true" optional:"true" help:"Morse code to check. If none provided, reads lines from stdin."`
	Quiet bool     `short:"q" help:"Print nothing, only set the exit status."`
}

func ValidateCmd() *cobra.Command {
	return boa.CmdT[ValidateParams]{
		Use:   "validate",
		Short: "Check that input is well formed Morse code",
		Long: `Check that every token of the input consists only of '.', '-' and '/'.

This is a lexical check: tokens that are not codes of the table still pass.
Exits with status 1 if any input is invalid.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *ValidateParams, cmd *cobra.Command, args []string) {
			if err := runValidate(params, os.Stdin, os.Stdout); err != nil {
				if errors.Is(err, errInvalidMorse) && params.Quiet {
					os.Exit(1)
				}
				fail("validate", err)
			}
		},
	}.ToCobra()
}

func runValidate(params *ValidateParams, stdin io.Reader, stdout io.Writer) error {
	inputs, err := common.Inputs(params.Morse, stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	invalid := 0
	for _, input := range inputs {
		ok := morse.Validate(input)
		if !ok {
			invalid++
		}
		if params.Quiet {
			continue
		}
		if ok {
			fmt.Fprintln(stdout, "valid")
		} else {
			fmt.Fprintln(stdout, "invalid")
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d inputs: %w", invalid, len(inputs), errInvalidMorse)
	}
	return nil
}
