package core

import (
	"regexp"
	"strings"

	"mxshs/betledger/src/domain"
)

var over05Re = regexp.MustCompile(`mais\s*de\s*0[.,]5\b`)

const (
	minutesFirstHalf = "40-Int"
	minutesFullTime  = "80-Fim"
)

// Over05 claims "over 0.5 corners" bets placed on a time window, plus the
// Asian corner lines that the ledger files in the same room.
type Over05 struct{}

func (Over05) Room() domain.Room { return domain.RoomOver05 }

func (Over05) Classify(f *domain.RawFields) (*domain.Claim, bool) {
	desc := Fold(f.Market)
	sel := Fold(f.Selection)
	_, hasLine := overLine(sel)

	clock, hasClock := clockRange(f.Selection + " " + f.SubHeader + " " + f.Market)

	var minutes string

	switch {
	case isFirstHalfAsian(desc) && hasLine:
		minutes = minutesFirstHalf
	case isFullTimeAsian(desc) && hasLine:
		minutes = minutesFullTime
	case strings.Contains(desc, "escanteio") &&
		(over05Re.MatchString(sel) || over05Re.MatchString(Fold(f.SubHeader))):
		minutes = windowLabel(sel)
	default:
		return nil, false
	}

	if hasClock {
		minutes = clock
	}

	return &domain.Claim{Room: domain.RoomOver05, Market: f.Market, Minutes: minutes}, true
}

func isFirstHalfAsian(desc string) bool {
	return desc == "1º tempo - escanteios asiaticos" ||
		desc == "1o tempo - escanteios asiaticos" ||
		desc == "primeiro tempo - escanteios asiaticos"
}

func isFullTimeAsian(desc string) bool {
	return desc == "escanteios asiaticos" || strings.Contains(desc, "total de escanteios")
}

// windowLabel reads a textual window such as "40-Int" from the selection.
func windowLabel(sel string) string {
	switch {
	case strings.Contains(sel, "40-int"):
		return minutesFirstHalf
	case strings.Contains(sel, "80-fim"):
		return minutesFullTime
	}
	return domain.NotFound
}

func ParseOver05Bets(html string, importDate string) []domain.BetRecord {
	return parseRoom(Over05{}, html, importDate)
}
