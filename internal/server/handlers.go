package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lox/potodds/internal/deck"
	"github.com/lox/potodds/internal/engine"
	"github.com/lox/potodds/internal/evaluator"
)

// calculateRequest is the body of POST /api/calculate
type calculateRequest struct {
	HoleCards      []string `json:"hole_cards"`
	CommunityCards []string `json:"community_cards"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "Pot Odds Calculator API",
		"version": Version,
		"endpoints": map[string]string{
			"calculate": "POST /api/calculate",
			"health":    "GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": Version,
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("invalid request body: %w", err))
		return
	}

	hole, community, err := parseRequest(req)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), calculationTimeout)
	defer cancel()

	result, err := s.engine.Calculate(ctx, hole, community)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrCardCount),
			errors.Is(err, engine.ErrDuplicateCard),
			errors.Is(err, engine.ErrUnsupportedStreet):
			s.writeError(w, http.StatusUnprocessableEntity, err)
		case errors.Is(err, evaluator.ErrEvaluation):
			s.logger.Error("evaluation failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, errors.New("hand evaluation failed"))
		default:
			s.logger.Error("calculation failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, errors.New("internal calculation error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// parseRequest validates the raw card strings before the engine runs.
// Counts and duplicates are checked here so that malformed requests
// never reach the evaluator.
func parseRequest(req calculateRequest) (hole, community []deck.Card, err error) {
	if len(req.HoleCards) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 hole cards, got %d", engine.ErrCardCount, len(req.HoleCards))
	}
	if len(req.CommunityCards) > 5 {
		return nil, nil, fmt.Errorf("%w: expected at most 5 community cards, got %d", engine.ErrCardCount, len(req.CommunityCards))
	}

	seen := deck.CardSet(0)
	parse := func(raw []string) ([]deck.Card, error) {
		cards := make([]deck.Card, 0, len(raw))
		for _, notation := range raw {
			card, err := deck.ParseCard(notation)
			if err != nil {
				return nil, err
			}
			if seen.Contains(card) {
				return nil, fmt.Errorf("%w: %s", engine.ErrDuplicateCard, card)
			}
			seen.Add(card)
			cards = append(cards, card)
		}
		return cards, nil
	}

	if hole, err = parse(req.HoleCards); err != nil {
		return nil, nil, err
	}
	if community, err = parse(req.CommunityCards); err != nil {
		return nil, nil, err
	}
	return hole, community, nil
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent, so an encode error can't change the status
	_ = json.NewEncoder(w).Encode(v)
}
