package bot

import (
	"bigtwo-server/internal/rng"
	"bigtwo-server/pkg/bigtwo"
)

// Shark always makes the cheapest legal play, saving its strong cards for
// later tricks
type Shark struct{}

// NewShark returns a shark-tier brain
func NewShark() *Shark {
	return &Shark{}
}

// ChooseMove implements Brain
func (s *Shark) ChooseMove(round *bigtwo.Round, seat int) Move {
	if move, forced := requiredMove(round, seat); forced {
		return move
	}

	plays := bigtwo.LegalPlays(round.Hands[seat], round.Last)
	if len(plays) == 0 {
		return Move{Pass: true}
	}

	// LegalPlays orders weakest first
	return Move{Cards: plays[0].Cards}
}

// BrainForTier returns the brain for the tier name, defaulting to casual
func BrainForTier(tier string, random rng.Generator) Brain {
	if tier == TierShark {
		return NewShark()
	}

	return NewCasual(random)
}
