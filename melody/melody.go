package melody

import (
	"github.com/jsphweid/chordline/model"
)

// held is the single slot of the extractor's state machine: nil means idle,
// otherwise one note is sounding.
type held struct {
	note     uint8
	velocity uint8
	start    int64
}

// Extract pairs note-on/note-off messages from a merged stream into
// NoteEvents. The input is treated as monophonic: a new note-on while a
// note is sounding closes the held note at the new note's start. A
// note-off for a pitch that isn't sounding is ignored, as is a note-off
// while idle. A note still sounding when the stream ends is dropped.
func Extract(msgs []model.TimedMessage) []model.NoteEvent {
	var notes []model.NoteEvent
	var h *held

	for _, m := range msgs {
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case m.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
			if h != nil {
				notes = append(notes, model.NoteEvent{
					Start:    h.start,
					End:      m.AbsTicks,
					Note:     h.note,
					Velocity: h.velocity,
				})
			}
			h = &held{note: key, velocity: velocity, start: m.AbsTicks}
		case m.Message.GetNoteOff(&channel, &key, &velocity),
			m.Message.GetNoteOn(&channel, &key, &velocity):
			// note-on with velocity 0 counts as a note-off
			if h == nil || h.note != key {
				continue
			}
			notes = append(notes, model.NoteEvent{
				Start:    h.start,
				End:      m.AbsTicks,
				Note:     h.note,
				Velocity: h.velocity,
			})
			h = nil
		}
	}

	return notes
}
