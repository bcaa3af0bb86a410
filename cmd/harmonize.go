package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/chordline/harmonize"
	"github.com/jsphweid/chordline/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(harmonizeCmd)
}

var harmonizeCmd = &cobra.Command{
	Use:   "harmonize",
	Short: "Adds an accompaniment track",
	Long:  `Adds an accompaniment track`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("Usage: chordline harmonize input.mid output.mid")
			os.Exit(2)
		}
		os.Exit(Harmonize(args[0], args[1]))
	},
}

// Harmonize runs the pipeline from input file to output file and returns
// the process exit code: 0 on success, 1 when the input has no melody
// notes or can't be read or written.
func Harmonize(inputPath string, outputPath string) int {
	mid, err := midi.ReadMidiFile(inputPath)
	if err != nil {
		fmt.Println(err.Error())
		return 1
	}

	res, err := harmonize.Run(mid)
	if err != nil {
		if errors.Is(err, harmonize.ErrNoMelody) {
			fmt.Println("No melody notes found.")
		} else {
			fmt.Println(err.Error())
		}
		return 1
	}

	if err := midi.WriteMidiFile(res, outputPath); err != nil {
		fmt.Println(err.Error())
		return 1
	}

	fmt.Printf("Wrote %v with accompaniment track.\n", outputPath)
	return 0
}
