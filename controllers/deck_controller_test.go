package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"pulse_server/models"
	"pulse_server/services"
)

func newDeckRouter(deck *services.DeckService) *mux.Router {
	controller := NewDeckController(deck, &services.ActionService{})
	r := mux.NewRouter()
	r.HandleFunc("/api/deck/current", controller.HandleGetCurrent).Methods("GET")
	r.HandleFunc("/api/deck/swipe", controller.HandleSwipe).Methods("POST")
	r.HandleFunc("/api/deck/reset", controller.HandleReset).Methods("POST")
	return r
}

func seedDeck() *services.DeckService {
	deck := services.NewDeckService([]models.Profile{
		{ID: "p1", Name: "Clara", Age: 28},
		{ID: "p2", Name: "Lucas", Age: 31},
	})
	// Keep removals pending so handler behavior is deterministic
	deck.Schedule = func(d time.Duration, f func()) *time.Timer {
		return time.NewTimer(time.Hour)
	}
	return deck
}

func TestHandleGetCurrent(t *testing.T) {
	router := newDeckRouter(seedDeck())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deck/current", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Profile   *models.Profile `json:"profile"`
		Remaining int             `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Profile)
	require.Equal(t, "p1", response.Profile.ID)
	require.Equal(t, 2, response.Remaining)
}

func TestHandleSwipeRejectsUnknownDecision(t *testing.T) {
	router := newDeckRouter(seedDeck())

	body := bytes.NewBufferString(`{"decision": "maybe"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deck/swipe", body))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSwipeAcceptsAndDebounces(t *testing.T) {
	router := newDeckRouter(seedDeck())

	swipe := func() map[string]interface{} {
		body := bytes.NewBufferString(`{"decision": "like"}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deck/swipe", body))
		require.Equal(t, http.StatusOK, rec.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		return response
	}

	require.Equal(t, true, swipe()["accepted"])
	require.Equal(t, false, swipe()["accepted"], "second swipe in the window is ignored")
}

func TestHandleReset(t *testing.T) {
	deck := seedDeck()
	router := newDeckRouter(deck)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deck/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, deck.Remaining())
}
