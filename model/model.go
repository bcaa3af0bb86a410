package model

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Mode uint8

const (
	Major Mode = iota
	Minor
)

// TimedMessage is a track message stamped with its absolute tick offset
// from the start of the file, produced by merging all tracks.
type TimedMessage struct {
	AbsTicks int64
	Message  smf.Message
}

// NoteEvent is one extracted melody note. Velocity is the note-on velocity.
type NoteEvent struct {
	Start    int64
	End      int64
	Note     uint8
	Velocity uint8
}

type KeyEstimate struct {
	TonicPc uint8
	Mode    Mode
}

// ChordChoice is a triad resolved to absolute pitch classes for some key.
// The Pcs order follows the chord's degree order.
type ChordChoice struct {
	Name string
	Pcs  [3]uint8
}

// GeneratedEvent is one accompaniment message tagged with the absolute tick
// it should sound at, before delta-time serialization.
type GeneratedEvent struct {
	AbsTicks int64
	Message  midi.Message
}
