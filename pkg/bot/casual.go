package bot

import (
	"bigtwo-server/internal/rng"
	"bigtwo-server/pkg/bigtwo"
)

// casualPassPercent is how often a casual bot passes despite holding a
// playable answer
const casualPassPercent = 25

// Casual plays a uniformly random legal combination and sometimes passes just
// because it can
type Casual struct {
	random rng.Generator
}

// NewCasual returns a casual-tier brain
func NewCasual(random rng.Generator) *Casual {
	return &Casual{random: random}
}

// ChooseMove implements Brain
func (c *Casual) ChooseMove(round *bigtwo.Round, seat int) Move {
	if move, forced := requiredMove(round, seat); forced {
		return move
	}

	plays := bigtwo.LegalPlays(round.Hands[seat], round.Last)
	if len(plays) == 0 {
		return Move{Pass: true}
	}

	if !round.IsLeading() && c.random.Intn(100) < casualPassPercent {
		return Move{Pass: true}
	}

	pick := plays[c.random.Intn(len(plays))]
	return Move{Cards: pick.Cards}
}
