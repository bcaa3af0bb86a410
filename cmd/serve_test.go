package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordline/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func smfBody(t *testing.T, s *smf.SMF) io.Reader {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestHarmonizeEndpoint(t *testing.T) {
	var track smf.Track
	track.Add(0, midi.NoteOn(0, 60, 64))
	track.Add(480, midi.NoteOff(0, 60))
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	s.Add(track)

	req := httptest.NewRequest(http.MethodPost, "/harmonize", smfBody(t, s))
	w := httptest.NewRecorder()
	HandleHarmonize(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("audio/midi", resp.Header.Get("Content-Type"))

	res, err := smf.ReadFrom(bytes.NewReader(respBody))
	assert.NoError(err)
	assert.Len(res.Tracks, 2)
}

func TestHarmonizeEndpointNoMelody(t *testing.T) {
	var track smf.Track
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	s.Add(track)

	req := httptest.NewRequest(http.MethodPost, "/harmonize", smfBody(t, s))
	w := httptest.NewRecorder()
	HandleHarmonize(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(422, resp.StatusCode)

	var errResp model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errResp))
	assert.Equal("No melody notes found.", errResp.Error)
}

func TestHarmonizeEndpointBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/harmonize", bytes.NewReader([]byte("junk")))
	w := httptest.NewRecorder()
	HandleHarmonize(w, req)

	assert := assert.New(t)
	assert.Equal(400, w.Result().StatusCode)
}
