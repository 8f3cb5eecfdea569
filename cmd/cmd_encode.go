package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/morsewave/cmd/common"
	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

type EncodeParams struct {
	Text []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
	Copy bool     `short:"c" help:"Copy the encoded output to the clipboard."`
	JSON bool     `long:"json" help:"Print one JSON message per input, with id and timestamp."`
}

func EncodeCmd() *cobra.Command {
	return boa.CmdT[EncodeParams]{
		Use:         "encode",
		Aliases:     []string{"enc", "e"},
		Short:       "Encode text to Morse code",
		Long:        "Convert text to Morse code. Letters are separated by spaces, words by '/'. Characters without a code are dropped.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *EncodeParams, cmd *cobra.Command, args []string) {
			if err := runEncode(params, os.Stdin, os.Stdout); err != nil {
				fail("encode", err)
			}
		},
	}.ToCobra()
}

func runEncode(params *EncodeParams, stdin io.Reader, stdout io.Writer) error {
	inputs, err := common.Inputs(params.Text, stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var encoded []string
	for _, input := range inputs {
		msg := morse.NewMessage(input)
		encoded = append(encoded, msg.Morse)
		if params.JSON {
			data, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, string(data))
		} else {
			fmt.Fprintln(stdout, msg.Morse)
		}
	}

	if params.Copy {
		if err := clipboardWriteAll(strings.Join(encoded, "\n")); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
	}
	return nil
}
