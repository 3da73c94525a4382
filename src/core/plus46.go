package core

import (
	"regexp"
	"strings"

	"mxshs/betledger/src/domain"
)

var (
	plusLineRe = regexp.MustCompile(`mais\s*de\s*([468])[.,]0\b`)
	homeSideRe = regexp.MustCompile(`\b(casa|mandante)\b`)
	awaySideRe = regexp.MustCompile(`\b(visitante|fora)\b`)
)

// Plus46 claims over 4, 6 and 8 corner lines, split by team when the market
// is a per-team total.
type Plus46 struct{}

func (Plus46) Room() domain.Room { return domain.RoomPlus46 }

func (Plus46) Classify(f *domain.RawFields) (*domain.Claim, bool) {
	m := plusLineRe.FindStringSubmatch(Fold(f.Selection))
	if m == nil {
		return nil, false
	}

	desc := Fold(f.Market)
	if !strings.Contains(desc, "escanteio") {
		return nil, false
	}

	home := homeSideRe.MatchString(desc)
	away := awaySideRe.MatchString(desc)
	if !home && !away && !strings.Contains(desc, "total de escanteios") {
		return nil, false
	}

	c := &domain.Claim{Room: domain.RoomPlus46, Market: "+" + m[1], DropVoid: true}
	switch {
	case home:
		c.Side = domain.SideHome
	case away:
		c.Side = domain.SideAway
	}

	return c, true
}

func ParsePlus46Bets(html string, importDate string) []domain.BetRecord {
	return parseRoom(Plus46{}, html, importDate)
}
