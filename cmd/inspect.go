package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordline/chord"
	"github.com/jsphweid/chordline/key"
	"github.com/jsphweid/chordline/melody"
	"github.com/jsphweid/chordline/midi"
	"github.com/jsphweid/chordline/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a midi file's melody",
	Long:  `Inspects a midi file's melody`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	mid, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}

	fmt.Printf("timeFormat: %v\n", mid.TimeFormat)
	fmt.Printf("tracks: %v\n", len(mid.Tracks))

	notes := melody.Extract(midi.MergeTracks(mid))
	fmt.Printf("notes: %v\n", len(notes))
	if len(notes) == 0 {
		return
	}

	hist := make(map[uint8]int)
	for _, n := range notes {
		hist[n.Note%12] += 1
	}
	pcs := util.GetKeys(hist)
	sort.Slice(pcs, func(i, j int) bool {
		return pcs[i] < pcs[j]
	})
	for _, pc := range pcs {
		fmt.Printf("pc %v: %v\n", pc, hist[pc])
	}

	k := key.Estimate(notes)
	fmt.Printf("key: %v\n", key.Name(k))

	choices := chord.BuildChords(k)
	usage := make(map[string]int)
	for _, c := range chord.SelectAll(choices, notes) {
		usage[c.Name] += 1
	}
	for _, c := range choices {
		if usage[c.Name] > 0 {
			fmt.Printf("chord %v %v: %v\n", c.Name, c.Pcs, usage[c.Name])
		}
	}
}
