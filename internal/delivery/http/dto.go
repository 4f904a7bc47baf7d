package http

import (
	"mtgsim/internal/action"
	"mtgsim/internal/session"
	"mtgsim/internal/state"
)

// MaxBatchSize bounds every batch endpoint (spec.md §6 "Batch variants...bounded at 100").
const MaxBatchSize = 100

type createRequest struct {
	Opponent     string `json:"opponent"`
	PlayerDeck   string `json:"playerDeck"`
	OpponentDeck string `json:"opponentDeck"`
	Seed         *int64 `json:"seed"`
}

type stepRequest struct {
	ActionIndex int `json:"actionIndex"`
}

type resetRequest struct {
	Seed *int64 `json:"seed"`
}

type legalActionDTO struct {
	Kind        action.Kind `json:"kind"`
	Description string      `json:"description"`
}

type stepResponse struct {
	Observation  [25]float64      `json:"observation"`
	ActionMask   []bool           `json:"actionMask"`
	LegalActions []legalActionDTO `json:"legalActions"`
	Reward       float64          `json:"reward"`
	Done         bool             `json:"done"`
	Truncated    bool             `json:"truncated"`
	Info         stepInfo         `json:"info"`
}

type stepInfo struct {
	StepCount int              `json:"stepCount"`
	Turn      int              `json:"turn"`
	Phase     state.Phase      `json:"phase"`
	Winner    *state.PlayerID  `json:"winner,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func toStepResponse(r session.StepResult) stepResponse {
	legal := make([]legalActionDTO, len(r.LegalActions))
	for i, a := range r.LegalActions {
		legal[i] = legalActionDTO{Kind: a.Kind, Description: a.Description}
	}
	mask := make([]bool, len(r.ActionMask))
	copy(mask, r.ActionMask[:])
	return stepResponse{
		Observation:  r.Observation,
		ActionMask:   mask,
		LegalActions: legal,
		Reward:       r.Reward,
		Done:         r.Done,
		Truncated:    r.Truncated,
		Info: stepInfo{
			StepCount: r.StepCount,
			Turn:      r.Turn,
			Phase:     r.Phase,
			Winner:    r.Winner,
			Error:     r.Err,
		},
	}
}

type createResponse struct {
	SessionID           string       `json:"sessionId"`
	Seed                int64        `json:"seed"`
	InitialStepResponse stepResponse `json:"initialStepResponse"`
}

type queryExpertResponse struct {
	ActionIndex int    `json:"actionIndex"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}
