package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morsewave/cmd"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupCodec    = "codec"
	groupPlayback = "playback"
)

// withGroup sets the GroupID on a command and returns it
func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "morsewave",
		Short:   "Morse code encoder, decoder and player",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupCodec, Title: "Encoding:"},
			{ID: groupPlayback, Title: "Playback:"},
		},
		SubCmds: []*cobra.Command{
			withGroup(cmd.EncodeCmd(), groupCodec),
			withGroup(cmd.DecodeCmd(), groupCodec),
			withGroup(cmd.ValidateCmd(), groupCodec),
			withGroup(cmd.TableCmd(), groupCodec),
			withGroup(cmd.PlayCmd(), groupPlayback),
			withGroup(cmd.TimelineCmd(), groupPlayback),
			withGroup(cmd.WavCmd(), groupPlayback),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
