package core

import (
	"strings"

	"mxshs/betledger/src/domain"
)

// AsiaticosHT claims first half Asian corner lines; the line itself, in
// comma-decimal form, becomes the minutes label.
type AsiaticosHT struct{}

func (AsiaticosHT) Room() domain.Room { return domain.RoomAsiaticosHT }

func (AsiaticosHT) Classify(f *domain.RawFields) (*domain.Claim, bool) {
	if !isFirstHalfAsian(Fold(f.Market)) {
		return nil, false
	}

	line, ok := overLine(Fold(f.Selection))
	if !ok {
		return nil, false
	}

	return &domain.Claim{
		Room:    domain.RoomAsiaticosHT,
		Market:  f.Market,
		Minutes: strings.Replace(line, ".", ",", 1),
	}, true
}

func ParseAsiaticosHTBets(html string, importDate string) []domain.BetRecord {
	return parseRoom(AsiaticosHT{}, html, importDate)
}
