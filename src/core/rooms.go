package core

import (
	"mxshs/betledger/src/domain"
)

// Parsers maps every room key to its entry point, for callers that pick the
// room at runtime.
var Parsers = map[domain.Room]ParseFunc{
	domain.RoomOver05:      ParseOver05Bets,
	domain.RoomZeroToTen:   ParseZeroToTenBets,
	domain.RoomAsiaticosHT: ParseAsiaticosHTBets,
	domain.RoomOver15:      ParseOver15Bets,
	domain.RoomRace:        ParseRaceBets,
	domain.RoomPlus46:      ParsePlus46Bets,
}

// roomClassifiers holds the single room form of every classifier.
var roomClassifiers = []Classifier{
	ZeroToTen{},
	Race{},
	Plus46{},
	AsiaticosHT{},
	Over05{},
	Over15{},
}

// Family is the order ImportAll tries classifiers in: narrow phrasings
// first, so that the broad over05 and over15 rules only see what is left.
// Over15 only takes goal lines here, anything else stays unclaimed.
func Family() []Classifier {
	return []Classifier{
		ZeroToTen{},
		Race{},
		Plus46{},
		AsiaticosHT{},
		Over05{},
		Over15{GoalLinesOnly: true},
	}
}

func Lookup(key string) (ParseFunc, bool) {
	p, ok := Parsers[domain.Room(key)]
	return p, ok
}

func ClassifierFor(room domain.Room) (Classifier, bool) {
	for _, c := range roomClassifiers {
		if c.Room() == room {
			return c, true
		}
	}
	return nil, false
}

func Rooms() []domain.Room {
	rooms := make([]domain.Room, 0, len(Parsers))
	for _, c := range roomClassifiers {
		rooms = append(rooms, c.Room())
	}
	return rooms
}

// ImportBets runs a single room over html and drops records existing
// already holds.
func ImportBets(room domain.Room, html string, importDate string, existing []domain.BetRecord) ([]domain.BetRecord, ImportReport) {
	c, ok := ClassifierFor(room)
	if !ok {
		return []domain.BetRecord{}, ImportReport{}
	}
	return NewImporter(c).Import(html, importDate, existing)
}

// ImportAll runs the whole classifier family, first match wins.
func ImportAll(html string, importDate string, existing []domain.BetRecord) ([]domain.BetRecord, ImportReport) {
	return NewImporter(Family()...).Import(html, importDate, existing)
}

func parseRoom(c Classifier, html string, importDate string) []domain.BetRecord {
	bets, _ := NewImporter(c).Import(html, importDate, nil)
	return bets
}
