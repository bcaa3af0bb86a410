package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/jsphweid/chordline/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiBytes(dat []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	var blank smf.SMF

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return ReadMidiBytes(dat)
}

// MergeTracks flattens all tracks into one message sequence ordered by
// absolute tick. Simultaneous messages keep track order, then the order
// they had within their track.
func MergeTracks(s *smf.SMF) []model.TimedMessage {
	var merged []model.TimedMessage

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			merged = append(merged, model.TimedMessage{
				AbsTicks: absTicks,
				Message:  event.Message,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AbsTicks < merged[j].AbsTicks
	})

	return merged
}

// WriteMidiFile serializes s next to the destination under a temp name and
// renames it into place, so path never holds a partial file.
func WriteMidiFile(s *smf.SMF, path string) error {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	if err != nil {
		return errors.New("Error serializing midi file... " + err.Error())
	}

	tmp := filepath.Join(filepath.Dir(path), uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, buf.Bytes(), 0666); err != nil {
		return errors.New("Error writing midi file... " + err.Error())
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.New("Error writing midi file... " + err.Error())
	}
	return nil
}
