package core

import (
	"regexp"
	"strings"

	"mxshs/betledger/src/domain"
)

var goalLineRe = regexp.MustCompile(`mais\s*de\s*1[.,]5\b`)

// Over15 files goal lines by period: first half bets are HT, whole match
// bets are FT. Descriptions naming neither stay unresolved and are dropped.
//
// The over15 room holds nothing but goal lines, so on its own Over15 claims
// every record. GoalLinesOnly restricts it to goal phrasings for pages that
// mix rooms.
type Over15 struct {
	GoalLinesOnly bool
}

func (Over15) Room() domain.Room { return domain.RoomOver15 }

func (o Over15) Classify(f *domain.RawFields) (*domain.Claim, bool) {
	desc := Fold(f.Market)

	if o.GoalLinesOnly && !strings.Contains(desc, "gol") && !goalLineRe.MatchString(Fold(f.Selection)) {
		return nil, false
	}

	minutes := domain.Unspecified
	switch {
	case strings.Contains(desc, "1º tempo"),
		strings.Contains(desc, "1o tempo"),
		strings.Contains(desc, "primeiro tempo"):
		minutes = "HT"
	case strings.Contains(desc, "jogo"), strings.Contains(desc, "partida"):
		minutes = "FT"
	}

	market := f.Market
	if market == "" {
		market = "Mercado não identificado"
	}

	return &domain.Claim{Room: domain.RoomOver15, Market: market, Minutes: minutes}, true
}

func ParseOver15Bets(html string, importDate string) []domain.BetRecord {
	return parseRoom(Over15{}, html, importDate)
}
