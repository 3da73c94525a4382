package core

import (
	"strings"

	"mxshs/betledger/src/domain"
)

const (
	zeroToTenMarket  = "10 minutos - escanteios - 3 opcoes"
	zeroToTenClock   = "00:00-09:59"
	zeroToTenMinutes = "0-10"
)

// ZeroToTen claims corner bets on the first ten minutes of a match.
type ZeroToTen struct{}

func (ZeroToTen) Room() domain.Room { return domain.RoomZeroToTen }

func (ZeroToTen) Classify(f *domain.RawFields) (*domain.Claim, bool) {
	desc := Fold(f.Market)
	sub := Fold(f.SubHeader)

	matched := strings.Contains(desc, zeroToTenMarket) || strings.Contains(sub, zeroToTenMarket)
	if !matched {
		clock, ok := clockRange(f.Selection + " " + f.SubHeader + " " + f.Market)
		matched = ok && clock == zeroToTenClock
	}
	if !matched {
		return nil, false
	}

	market := f.Market
	if market == "" {
		market = f.SubHeader
	}

	return &domain.Claim{Room: domain.RoomZeroToTen, Market: market, Minutes: zeroToTenMinutes}, true
}

func ParseZeroToTenBets(html string, importDate string) []domain.BetRecord {
	return parseRoom(ZeroToTen{}, html, importDate)
}
