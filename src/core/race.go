package core

import (
	"regexp"

	"mxshs/betledger/src/domain"
)

var raceRe = regexp.MustCompile(`primeiro a marcar (\d+) escanteios`)

// Race claims "first to N corners" bets and works out which side the
// selected participant plays for.
type Race struct{}

func (Race) Room() domain.Room { return domain.RoomRace }

func (Race) Classify(f *domain.RawFields) (*domain.Claim, bool) {
	m := raceRe.FindStringSubmatch(Fold(f.Market))
	if m == nil {
		return nil, false
	}

	return &domain.Claim{
		Room:     domain.RoomRace,
		Market:   "Race " + m[1],
		Side:     participantSide(f.Selection, f.HomeTeam, f.AwayTeam),
		DropVoid: true,
	}, true
}

// participantSide matches a selection's participant name against both teams,
// ignoring accents and generic suffixes like "FC".
func participantSide(participant, home, away string) string {
	p := teamKey(participant)
	if p == "" {
		return ""
	}

	switch {
	case home != domain.NotFound && similarNames(p, teamKey(home)):
		return domain.SideHome
	case away != domain.NotFound && similarNames(p, teamKey(away)):
		return domain.SideAway
	}
	return ""
}

func ParseRaceBets(html string, importDate string) []domain.BetRecord {
	return parseRoom(Race{}, html, importDate)
}
