package qlearn

import "github.com/lox/blackjackrl/internal/game"

// Payouts per resolved hand.
const (
	RewardBlackjack = 1.5
	RewardWin       = 1.0
	RewardLoss      = -1.0
	RewardPush      = 0.0
)

// Reward returns the terminal reward for an outcome. playerBlackjack must
// only be true for a win on a two-card 21; see game.Game.PlayerBlackjack.
func Reward(outcome game.Outcome, playerBlackjack bool) float64 {
	switch outcome {
	case game.Win:
		if playerBlackjack {
			return RewardBlackjack
		}
		return RewardWin
	case game.Loss:
		return RewardLoss
	default:
		return RewardPush
	}
}
