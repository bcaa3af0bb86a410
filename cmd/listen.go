package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordline/chord"
	"github.com/jsphweid/chordline/key"
	"github.com/jsphweid/chordline/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Suggests chords for live input",
	Long:  `Suggests chords for live input`,
	Run: func(cmd *cobra.Command, args []string) {
		startListen()
	},
}

func startListen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	// every pitch played so far, feeds the rolling key estimate
	var history []uint8
	var prev model.ChordChoice
	var hasPrev bool

	suggest := func(pitches []uint8, last uint8) {
		k := key.EstimatePitches(pitches)
		choices := chord.BuildChords(k)
		c := chord.Choose(choices, last%12, prev, hasPrev)
		prev = c
		hasPrev = true
		fmt.Printf("key: %v, chord: %v %v\n", key.Name(k), c.Name, c.Pcs)
	}

	d := debounce.New(250 * time.Millisecond)
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, k, vel uint8
		if !msg.GetNoteStart(&ch, &k, &vel) {
			return
		}
		history = append(history, k)
		pitches := append([]uint8(nil), history...)
		last := k
		d(func() {
			suggest(pitches, last)
		})
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Hour * 24)
	stop()
}
