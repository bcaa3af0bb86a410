package harmonize

import (
	"errors"

	"github.com/jsphweid/chordline/accomp"
	"github.com/jsphweid/chordline/chord"
	"github.com/jsphweid/chordline/key"
	"github.com/jsphweid/chordline/melody"
	"github.com/jsphweid/chordline/midi"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoMelody = errors.New("no melody notes found")

// Run extracts the melody from src, estimates its key, picks a triad per
// note and returns a copy of src with one appended accompaniment track.
// The time format passes through unchanged. src is not modified.
func Run(src *smf.SMF) (*smf.SMF, error) {
	merged := midi.MergeTracks(src)
	notes := melody.Extract(merged)
	if len(notes) == 0 {
		return nil, ErrNoMelody
	}

	k := key.Estimate(notes)
	choices := chord.BuildChords(k)
	picks := chord.SelectAll(choices, notes)
	events := accomp.BuildEvents(notes, picks)
	track := accomp.BuildTrack(events)

	res := smf.New()
	res.TimeFormat = src.TimeFormat
	for _, tr := range src.Tracks {
		res.Add(tr)
	}
	res.Add(track)
	return res, nil
}
