package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordline/harmonize"
	"github.com/jsphweid/chordline/midi"
	"github.com/jsphweid/chordline/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleHarmonize takes a midi file body and responds with the same file
// plus an appended accompaniment track.
func HandleHarmonize(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return
	}

	mid, err := midi.ReadMidiBytes(reqBody)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	res, err := harmonize.Run(mid)
	if err != nil {
		if errors.Is(err, harmonize.ErrNoMelody) {
			writeError(w, 422, "No melody notes found.")
		} else {
			writeError(w, 500, err.Error())
		}
		return
	}

	var buf bytes.Buffer
	if _, err := res.WriteTo(&buf); err != nil {
		writeError(w, 500, "Could not serialize result: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Write(buf.Bytes())
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/harmonize", HandleHarmonize).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
