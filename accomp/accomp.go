package accomp

import (
	"sort"

	"github.com/jsphweid/chordline/model"
	"github.com/jsphweid/chordline/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	channel       = 0
	chordVelocity = 60

	// lowest octave chords are allowed to sit in
	minOctave = 2
)

// BuildEvents emits a note-on/note-off pair per chord tone, spanning each
// melody note and voiced roughly two octaves below it. chords must align
// with notes (see chord.SelectAll). Overlapping on/off pairs for the same
// pitch across adjacent notes are left as-is.
func BuildEvents(notes []model.NoteEvent, chords []model.ChordChoice) []model.GeneratedEvent {
	var events []model.GeneratedEvent

	for i, n := range notes {
		targetOctave := util.Max(minOctave, int(n.Note)/12-2)
		base := uint8(targetOctave * 12)
		for _, pc := range chords[i].Pcs {
			events = append(events, model.GeneratedEvent{
				AbsTicks: n.Start,
				Message:  midi.NoteOn(channel, base+pc, chordVelocity),
			})
			events = append(events, model.GeneratedEvent{
				AbsTicks: n.End,
				Message:  midi.NoteOff(channel, base+pc),
			})
		}
	}

	return events
}

// BuildTrack sorts events by absolute tick (stable, so insertion order
// holds for equal ticks) and converts them to a delta-time track. Deltas
// are floored at 0. The track comes back closed.
func BuildTrack(events []model.GeneratedEvent) smf.Track {
	sorted := make([]model.GeneratedEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AbsTicks < sorted[j].AbsTicks
	})

	var track smf.Track
	var lastTicks int64
	for _, ev := range sorted {
		delta := util.Max(0, ev.AbsTicks-lastTicks)
		lastTicks = ev.AbsTicks
		track.Add(uint32(delta), ev.Message)
	}
	track.Close(0)
	return track
}
