// Package deckapi exposes a deck.Repository over HTTP and provides the
// matching client.
package deckapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
)

// Server serves deck data from a repository.
type Server struct {
	repo   deck.Repository
	router *mux.Router
}

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// NewServer builds the router for repo.
func NewServer(repo deck.Repository) *Server {
	s := &Server{repo: repo, router: mux.NewRouter()}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/decks", s.handleListDecks).Methods(http.MethodGet)
	api.HandleFunc("/decks/{id}/cards", s.handleDeckCards).Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer wraps s in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.repo.ListDecks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list decks")
		return
	}
	writeJSON(w, http.StatusOK, decks)
}

func (s *Server) handleDeckCards(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || deck.ValidateID(id) != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	detail, err := s.repo.Cards(r.Context(), id)
	switch {
	case errors.Is(err, deck.ErrNotFound):
		writeError(w, http.StatusNotFound, "deck not found")
		return
	case errors.Is(err, deck.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to fetch deck")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
