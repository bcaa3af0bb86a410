package chord

import (
	"testing"

	"github.com/jsphweid/chordline/model"
	"github.com/stretchr/testify/assert"
)

func cMajorChords() []model.ChordChoice {
	return BuildChords(model.KeyEstimate{TonicPc: 0, Mode: model.Major})
}

func TestBuildChordsKeepsTableOrder(t *testing.T) {
	choices := cMajorChords()

	assert := assert.New(t)
	assert.Equal([]model.ChordChoice{
		{Name: "I", Pcs: [3]uint8{0, 4, 7}},
		{Name: "IV", Pcs: [3]uint8{5, 9, 0}},
		{Name: "V", Pcs: [3]uint8{7, 11, 2}},
		{Name: "vi", Pcs: [3]uint8{9, 0, 4}},
	}, choices)
}

func TestBuildChordsTransposes(t *testing.T) {
	choices := BuildChords(model.KeyEstimate{TonicPc: 9, Mode: model.Minor})

	assert := assert.New(t)
	assert.Equal(model.ChordChoice{Name: "I", Pcs: [3]uint8{9, 1, 4}}, choices[0])
	assert.Equal(model.ChordChoice{Name: "V", Pcs: [3]uint8{4, 8, 11}}, choices[2])
}

func TestChoosePicksFirstMatchInTableOrder(t *testing.T) {
	choices := cMajorChords()

	assert := assert.New(t)
	// 0 and 4 hit I before IV/vi, 9 hits IV before vi, 2 only hits V
	assert.Equal("I", Choose(choices, 0, model.ChordChoice{}, false).Name)
	assert.Equal("I", Choose(choices, 4, model.ChordChoice{}, false).Name)
	assert.Equal("IV", Choose(choices, 9, model.ChordChoice{}, false).Name)
	assert.Equal("V", Choose(choices, 2, model.ChordChoice{}, false).Name)
}

func TestChooseFallsBackToFirstChord(t *testing.T) {
	choices := cMajorChords()

	// C# is chromatic, no triad contains it
	c := Choose(choices, 1, model.ChordChoice{}, false)

	assert := assert.New(t)
	assert.Equal("I", c.Name)
}

func TestChooseKeepsPreviousOverTableOrder(t *testing.T) {
	choices := cMajorChords()

	// 0 is in both I and IV, the held IV wins
	c := Choose(choices, 0, choices[1], true)

	assert := assert.New(t)
	assert.Equal("IV", c.Name)
}

func TestSelectAllStaysOnChordForContainedMelody(t *testing.T) {
	choices := cMajorChords()
	notes := []model.NoteEvent{
		{Note: 60}, {Note: 64}, {Note: 67}, {Note: 72}, {Note: 76},
	}

	picks := SelectAll(choices, notes)

	assert := assert.New(t)
	assert.Len(picks, len(notes))
	for _, p := range picks {
		assert.Equal("I", p.Name)
	}
}

func TestSelectAllThreadsContinuity(t *testing.T) {
	choices := cMajorChords()
	// F picks IV, then C stays on IV even though I also contains it,
	// then D forces a change to V
	notes := []model.NoteEvent{{Note: 65}, {Note: 60}, {Note: 62}}

	picks := SelectAll(choices, notes)

	assert := assert.New(t)
	assert.Equal("IV", picks[0].Name)
	assert.Equal("IV", picks[1].Name)
	assert.Equal("V", picks[2].Name)
}
