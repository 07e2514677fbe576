package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/tidwall/sjson"
)

func (s *Server) onHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []byte(`{"status":"ok"}`))
}

// onDataFile serves the data file as is. It is re-read on every request so edits
// show up on the next refresh.
func (s *Server) onDataFile(w http.ResponseWriter, _ *http.Request) {
	body, err := source.ReadFile(s.dataFile)
	if err != nil {
		slog.Error("Failed to read data file", slog.String("path", s.dataFile), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, source.ErrFileRead.Error())

		return
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) onPlayers(w http.ResponseWriter, r *http.Request) {
	ranked, ok := s.ranked(w, r)
	if !ok {
		return
	}

	body, err := leaderboard.MarshalRanked(ranked)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) onPlayer(w http.ResponseWriter, r *http.Request) {
	ranked, ok := s.ranked(w, r)
	if !ok {
		return
	}

	name := mux.Vars(r)["name"]
	for idx, player := range ranked {
		if player.Name != name {
			continue
		}

		body, err := leaderboard.MarshalRecord(idx+1, player)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())

			return
		}

		writeJSON(w, http.StatusOK, body)

		return
	}

	writeError(w, http.StatusNotFound, "Player not found")
}

// ranked loads the data file through the same pipeline the ui uses. On failure the
// error response has already been written.
func (s *Server) ranked(w http.ResponseWriter, r *http.Request) ([]leaderboard.PlayerRecord, bool) {
	result, err := s.loader.Load(r.Context(), source.Request{Origin: source.OriginFile, Location: s.dataFile})
	if err != nil {
		writeError(w, http.StatusInternalServerError, source.StatusFailed(source.OriginFile, err).Message)

		return nil, false
	}

	return result.Players, true
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	body, err := sjson.SetBytes([]byte(`{}`), "error", message)
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}

	writeJSON(w, status, body)
}
