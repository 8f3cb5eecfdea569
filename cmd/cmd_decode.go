package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/spf13/cobra"
)

type DecodeParams struct {
	Morse []string `pos:"true" optional:"true" help:"Morse code to decode. If none provided, reads lines from stdin."`
}

func DecodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:         "decode",
		Aliases:     []string{"dec", "d"},
		Short:       "Decode Morse code to text",
		Long:        "Convert space separated Morse code back to text. '/' decodes to a space. Unknown codes are dropped.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			if err := runDecode(params, os.Stdin, os.Stdout); err != nil {
				fail("decode", err)
			}
		},
	}.ToCobra()
}

func runDecode(params *DecodeParams, stdin io.Reader, stdout io.Writer) error {
	inputs, err := common.Inputs(params.Morse, stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	for _, input := range inputs {
		fmt.Fprintln(stdout, morse.Decode(input))
	}
	return nil
}
