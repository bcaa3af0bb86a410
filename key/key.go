package key

import (
	"math"

	"github.com/jsphweid/chordline/model"
)

var MajorScale = [7]uint8{0, 2, 4, 5, 7, 9, 11}
var MinorScale = [7]uint8{0, 2, 3, 5, 7, 8, 10}

// subtracted from minor scores, so exact ties go to major
const minorPenalty = 0.2

var pcNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// EstimatePitches scores all 24 keys against the pitch-class histogram and
// returns the best one. Enumeration runs tonic 0..11 with major before
// minor, and only a strictly better score displaces the current best, so
// ties resolve to the earliest candidate. No pitches means C major.
func EstimatePitches(pitches []uint8) model.KeyEstimate {
	best := model.KeyEstimate{TonicPc: 0, Mode: model.Major}
	if len(pitches) == 0 {
		return best
	}

	var hist [12]int
	for _, p := range pitches {
		hist[p%12] += 1
	}

	bestScore := math.Inf(-1)
	for tonic := uint8(0); tonic < 12; tonic++ {
		for _, mode := range []model.Mode{model.Major, model.Minor} {
			scale := MajorScale
			if mode == model.Minor {
				scale = MinorScale
			}
			var count int
			for _, degree := range scale {
				count += hist[(tonic+degree)%12]
			}
			score := float64(count)
			if mode == model.Minor {
				score -= minorPenalty
			}
			if score > bestScore {
				bestScore = score
				best = model.KeyEstimate{TonicPc: tonic, Mode: mode}
			}
		}
	}
	return best
}

func Estimate(notes []model.NoteEvent) model.KeyEstimate {
	pitches := make([]uint8, 0, len(notes))
	for _, n := range notes {
		pitches = append(pitches, n.Note)
	}
	return EstimatePitches(pitches)
}

func Name(k model.KeyEstimate) string {
	mode := "major"
	if k.Mode == model.Minor {
		mode = "minor"
	}
	return pcNames[k.TonicPc%12] + " " + mode
}
