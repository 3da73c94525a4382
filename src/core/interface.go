package core

import (
	"mxshs/betledger/src/domain"
)

// Classifier decides whether a settled bet belongs to its room and, if so,
// derives the room specific fields.
type Classifier interface {
	Room() domain.Room
	Classify(f *domain.RawFields) (*domain.Claim, bool)
}

// ParseFunc is the per-room entry point exposed to callers.
type ParseFunc func(html string, importDate string) []domain.BetRecord

// Selector lists, per field, the CSS paths tried in order. The bookmaker
// renders the same data with different class names depending on market type.
type Selector struct {
	Item         string
	HomeTeam     []string
	AwayTeam     []string
	Championship []string
	Breadcrumb   string
	Market       []string
	Selection    []string
	SubHeader    []string
	BetHeader    string
	HeaderText   string
	Odd          []string
	Stake        []string
	Return       []string
	Marker       string
	StatusLabel  []string
	ResultText   []string
}

var Bet365 = Selector{
	Item: `.myb-SettledBetItem`,
	HomeTeam: []string{
		`.myb-BetParticipant_Team1Name`,
		`.m1-MiniMatchLiveSoccerModule_Team1Name`,
		`.myb-Market-Header-TeamA`,
	},
	AwayTeam: []string{
		`.myb-BetParticipant_Team2Name`,
		`.m1-MiniMatchLiveSoccerModule_Team2Name`,
		`.myb-Market-Header-TeamB`,
	},
	Championship: []string{`.myb-BetParticipant_SubHeaderLeft`},
	Breadcrumb:   `.myb-Market-breadcrumb`,
	Market:       []string{`.myb-BetParticipant_MarketDescription`},
	Selection: []string{
		`.myb-BetParticipant_ParticipantSpan`,
		`.myb-SettledBetItemHeader_SubHeaderText`,
	},
	SubHeader:  []string{`.myb-SettledBetItemHeader_SubHeaderText`},
	BetHeader:  `.myb-SettledBetItem_BetHeader`,
	HeaderText: `.myb-SettledBetItem_HeaderText`,
	Odd: []string{
		`.myb-BetParticipant_HeaderOdds`,
		`.myb-BetParticipant_Odds`,
	},
	Stake: []string{
		`.myb-SettledBetItemHeader_Text`,
		`.myb-Bet-StakeAmount`,
		`.myd-StakeDisplay_StakeWrapper`,
	},
	Return: []string{
		`.myb-SettledBetItemFooter_BetInformationText`,
		`.myb-Bet-ReturnsAmount`,
	},
	Marker: `.myb-WinLossIndicator`,
	StatusLabel: []string{
		`.myb-SettledBetItem_BetStateLabel`,
		`.myb-SettledBetItem_BetState`,
		`.myb-HalfAndHalfPill_TextStatusLHS`,
		`.myb-Bet-ResultIndicator--WON`,
		`.myb-Bet-ResultIndicator--LOST`,
		`.myb-Bet-ResultIndicator--PUSH`,
	},
	ResultText: []string{`.myb-BetParticipant_ScoreSample`},
}
