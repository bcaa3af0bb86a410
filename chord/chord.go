package chord

import (
	"github.com/jsphweid/chordline/model"
)

// chordTable is ordered: Choose scans it front to back, so position is
// selection priority. Keep it a slice, not a map.
var chordTable = []struct {
	name    string
	degrees [3]uint8
}{
	{"I", [3]uint8{0, 4, 7}},
	{"IV", [3]uint8{5, 9, 0}},
	{"V", [3]uint8{7, 11, 2}},
	{"vi", [3]uint8{9, 0, 4}},
}

// BuildChords resolves the triad table against a key's tonic. The result
// keeps table order.
func BuildChords(k model.KeyEstimate) []model.ChordChoice {
	choices := make([]model.ChordChoice, 0, len(chordTable))
	for _, c := range chordTable {
		var pcs [3]uint8
		for i, degree := range c.degrees {
			pcs[i] = (k.TonicPc + degree) % 12
		}
		choices = append(choices, model.ChordChoice{Name: c.name, Pcs: pcs})
	}
	return choices
}

func Contains(c model.ChordChoice, pc uint8) bool {
	for _, p := range c.Pcs {
		if p == pc {
			return true
		}
	}
	return false
}

// Choose picks the triad for one melody pitch class. The previous choice
// wins whenever it still contains the pitch class, otherwise the first
// matching triad in table order, otherwise the first triad outright.
func Choose(choices []model.ChordChoice, pc uint8, prev model.ChordChoice, hasPrev bool) model.ChordChoice {
	if hasPrev && Contains(prev, pc) {
		return prev
	}
	for _, c := range choices {
		if Contains(c, pc) {
			return c
		}
	}
	return choices[0]
}

// SelectAll folds Choose over the melody in order, threading the previous
// choice through as the only carried state. The result aligns with notes.
func SelectAll(choices []model.ChordChoice, notes []model.NoteEvent) []model.ChordChoice {
	res := make([]model.ChordChoice, 0, len(notes))
	var prev model.ChordChoice
	var hasPrev bool
	for _, n := range notes {
		c := Choose(choices, n.Note%12, prev, hasPrev)
		prev = c
		hasPrev = true
		res = append(res, c)
	}
	return res
}
