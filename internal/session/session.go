package session

import (
	"mtgsim/internal/action"
	"mtgsim/internal/catalog"
	"mtgsim/internal/engine"
	"mtgsim/internal/errors"
	"mtgsim/internal/logger"
	"mtgsim/internal/rl"
	"mtgsim/internal/state"

	"go.uber.org/zap"
)

// MaxSteps truncates a pathologically long game (spec.md §4.8 "Truncation").
const MaxSteps = 500

// StepResult is the per-step return value the delivery layer serializes.
type StepResult struct {
	Observation  [rl.NumFeatures]float64
	ActionMask   [action.MaxActions]bool
	LegalActions []action.Action
	Reward       float64
	Done         bool
	Truncated    bool
	StepCount    int
	Turn         int
	Phase        state.Phase
	Winner       *state.PlayerID
	Err          string
}

// Session owns one GameState, the opponent Bot, the step counter, and the
// reward shaper, for a single player-vs-opponent episode (spec.md §4.8).
type Session struct {
	ID string

	Game *state.GameState
	Eng  *engine.Engine
	App  *action.Applier

	Opponent     Bot
	OpponentKind string
	PlayerDeck   string
	OpponentDeck string
	Seed         int64

	shaper    *rl.RewardShaper
	stepCount int

	lastAccessedAt int64 // unix seconds, maintained by Manager
}

// New constructs a Session bound to reg, deck names, opponent bot, and seed.
func New(id string, reg catalog.Registry, playerDeck, opponentDeck string, opponent Bot, opponentKind string, seed int64) *Session {
	eng := engine.New(reg)
	s := &Session{
		ID:           id,
		Eng:          eng,
		App:          action.NewApplier(eng),
		Opponent:     opponent,
		OpponentKind: opponentKind,
		PlayerDeck:   playerDeck,
		OpponentDeck: opponentDeck,
		Seed:         seed,
	}
	s.initGame()
	return s
}

func (s *Session) initGame() {
	s.Game = NewGame(s.PlayerDeck, s.OpponentDeck, s.Seed)
	s.Eng.StartTurn(s.Game)
	s.shaper = rl.NewRewardShaper(s.Eng.Reg, state.Player)
	s.shaper.Init(s.Game)
	s.stepCount = 0
}

// Reset rebuilds the session's GameState from a (possibly new) seed,
// resetting the shaper's potential memory and step counter.
func (s *Session) Reset(seed *int64) StepResult {
	if seed != nil {
		s.Seed = *seed
	}
	s.initGame()
	return s.observe(0, false, false, "")
}

// Legal returns the current legal-action list for the given perspective.
func (s *Session) Legal(pid state.PlayerID) []action.Action {
	return s.App.Gen.Legal(s.Game, pid)
}

// State returns the current observation/mask/legal-actions without applying
// any action (spec.md §6 "getState").
func (s *Session) State() StepResult {
	return s.observe(0, s.Game.Outcome.Decided, false, "")
}

// Step applies actionIndex (an index into the player's current legal-action
// list) and, if the opponent then holds priority, drives it to completion
// (spec.md §4.8 "Opponent drive").
func (s *Session) Step(actionIndex int) StepResult {
	legal := s.Legal(state.Player)
	if actionIndex < 0 || actionIndex >= len(legal) {
		return s.observe(0, false, false, "InvalidAction: action index out of range")
	}
	act := legal[actionIndex]

	if err := s.App.Apply(s.Game, state.Player, act); err != nil {
		return s.observe(0, false, false, err.Error())
	}

	s.stepCount++
	if failure := s.driveToDecision(); failure != nil {
		return s.terminalFromFailure(failure)
	}

	return s.finishStep()
}

// OpponentStep applies actionIndex against the opponent seat directly; only
// meaningful when the opponent slot is "external" (spec.md §6 "opponentStep").
func (s *Session) OpponentStep(actionIndex int) StepResult {
	legal := s.Legal(state.Opponent)
	if actionIndex < 0 || actionIndex >= len(legal) {
		return s.observe(0, false, false, "InvalidAction: action index out of range")
	}
	act := legal[actionIndex]
	if err := s.App.Apply(s.Game, state.Opponent, act); err != nil {
		return s.observe(0, false, false, err.Error())
	}
	s.stepCount++
	if failure := s.driveToDecision(); failure != nil {
		return s.terminalFromFailure(failure)
	}
	return s.finishStep()
}

// driveToDecision repeatedly lets the opponent bot act while it holds
// priority, and auto-applies the controlling player's own action whenever it
// is uniquely determined, returning control only on a genuine multi-way
// decision or game end (spec.md §4.7 "Auto-pass": "the engine repeatedly
// drives the opponent bot while it has priority, and auto-applies any player
// actions that are uniquely determined (exactly one legal action)").
func (s *Session) driveToDecision() *errors.EngineError {
	for !s.Game.Outcome.Decided && s.stepCount <= MaxSteps {
		pid, ok := s.Game.PriorityPlayer()
		if !ok {
			break
		}

		if pid == state.Opponent {
			if s.OpponentKind == "external" {
				break
			}
			legal := s.Legal(state.Opponent)
			if len(legal) == 0 {
				break
			}
			act, err := s.Opponent.ChooseAction(s.Game, state.Opponent, legal)
			if err != nil {
				logger.WithGameContext(s.ID, s.Game).Warn("opponent bot failed", zap.Error(err))
				return errors.OpponentFailure(err)
			}
			if err := s.App.Apply(s.Game, state.Opponent, act); err != nil {
				logger.WithGameContext(s.ID, s.Game).Warn("opponent bot returned illegal action", zap.Error(err))
				return errors.OpponentFailure(err)
			}
			s.stepCount++
			continue
		}

		// pid == state.Player. Combat's declare-attackers/declare-blockers
		// steps are excluded: Generator.Legal re-offers the same combat
		// choice on every call within those steps whether or not one was
		// already declared this step (there is no "already declared" flag),
		// so auto-applying there would never let the turn advance.
		if s.Game.Step == state.StepDeclareAttackers || s.Game.Step == state.StepDeclareBlockers {
			break
		}
		legal := s.Legal(state.Player)
		if len(legal) != 1 {
			break
		}
		if err := s.App.Apply(s.Game, state.Player, legal[0]); err != nil {
			logger.WithGameContext(s.ID, s.Game).Error("auto-pass failed applying the player's forced action", zap.Error(err))
			return errors.AutoPassFailure(err)
		}
		s.stepCount++
	}
	return nil
}

// terminalFromFailure ends the session on an auto-pass-loop failure
// (spec.md §7): an OpponentFailure hands the win to the player, since the
// bot is the one that misbehaved; any other failure (currently only
// AutoPassFailure) marks the player as the loser, since it is the player's
// own forced action that could not be applied.
func (s *Session) terminalFromFailure(failure *errors.EngineError) StepResult {
	if !s.Game.Outcome.Decided {
		winner := state.Opponent
		if failure.Kind == errors.KindOpponentFailure {
			winner = state.Player
		}
		s.Game.Outcome = state.Outcome{Decided: true, Winner: winner}
	}
	return s.observe(s.Terminal(), true, false, failure.Error())
}

// Terminal returns the fixed outcome reward for the player's perspective.
func (s *Session) Terminal() float64 { return rl.Terminal(s.Game, state.Player) }

func (s *Session) finishStep() StepResult {
	truncated := s.stepCount > MaxSteps
	if s.Game.Outcome.Decided {
		return s.observe(s.Terminal(), true, false, "")
	}
	if truncated {
		return s.observe(s.shaper.Step(s.Game), false, true, "")
	}
	return s.observe(s.shaper.Step(s.Game), false, false, "")
}

func (s *Session) observe(reward float64, done, truncated bool, errMsg string) StepResult {
	legal := s.Legal(state.Player)
	res := StepResult{
		Observation:  rl.Observe(s.Game, s.Eng.Reg, state.Player),
		ActionMask:   rl.Mask(legal),
		LegalActions: legal,
		Reward:       reward,
		Done:         done,
		Truncated:    truncated,
		StepCount:    s.stepCount,
		Turn:         s.Game.TurnCount,
		Phase:        s.Game.Phase,
		Err:          errMsg,
	}
	if s.Game.Outcome.Decided && !s.Game.Outcome.Draw {
		w := s.Game.Outcome.Winner
		res.Winner = &w
	}
	return res
}

// QueryExpertAction asks a one-off Bot of the given kind for its recommended
// action, without applying it (spec.md §6 "queryExpert").
func (s *Session) QueryExpertAction(expert Bot) (int, string, error) {
	legal := s.Legal(state.Player)
	if len(legal) == 0 {
		return 0, "", errors.InvalidAction("no legal actions available")
	}
	act, err := expert.ChooseAction(s.Game, state.Player, legal)
	if err != nil {
		return 0, "", err
	}
	for i, candidate := range legal {
		if action.Equal(candidate, act) {
			return i, candidate.Description, nil
		}
	}
	return 0, legal[0].Description, nil
}
