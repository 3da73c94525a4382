package core

import (
	"mxshs/betledger/src/domain"
)

// Settlement is the outcome of applying the settlement rules to a bet.
type Settlement struct {
	Profit float64
	Odd    float64
}

// Profit returns the signed profit of a bet. returnValue is the payout shown
// by the bookmaker, 0 when unknown; when present it takes precedence over
// the odd for won bets.
func Profit(odd float64, status domain.Status, stake, returnValue float64) float64 {
	return Settle(odd, status, stake, returnValue).Profit
}

// Settle computes profit and the odd to record. Cashed out bets get an
// effective odd back-derived from the payout; void bets record odd 1.
func Settle(odd float64, status domain.Status, stake, returnValue float64) Settlement {
	if stake <= 0 {
		return Settlement{Profit: 0, Odd: round(odd, 4)}
	}

	var s Settlement
	s.Odd = odd

	switch status {
	case domain.StatusWon:
		if returnValue > 0 {
			s.Profit = returnValue - stake
		} else {
			s.Profit = (odd - 1) * stake
		}
	case domain.StatusLost:
		s.Profit = -stake
	case domain.StatusVoid:
		s.Odd = 1
	case domain.StatusCashedOut:
		s.Profit = returnValue - stake
		if s.Profit > 0 {
			s.Odd = s.Profit/stake + 1
		} else if s.Profit == 0 {
			s.Odd = 1
		}
	}

	s.Profit = round(s.Profit, 2)
	s.Odd = round(s.Odd, 4)

	return s
}
