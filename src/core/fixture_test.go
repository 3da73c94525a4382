package core

import (
	"strings"
	"testing"

	"mxshs/betledger/src/domain"

	"github.com/PuerkitoBio/goquery"
)

// betFixture renders one settled bet in the markup the bookmaker exports.
// Empty fields are left out of the fragment entirely.
type betFixture struct {
	header    string
	stake     string
	subHeader string
	marker    string
	label     string
	selection string
	odd       string
	market    string
	home      string
	away      string
	ret       string
	extra     string
}

func (b betFixture) html() string {
	var sb strings.Builder

	div := func(class, text string) {
		if text != "" {
			sb.WriteString(`<div class="` + class + `">` + text + `</div>`)
		}
	}

	sb.WriteString(`<div class="myb-SettledBetItem">`)
	div("myb-SettledBetItem_HeaderText", b.header)
	div("myb-SettledBetItemHeader_Text", b.stake)
	div("myb-SettledBetItemHeader_SubHeaderText", b.subHeader)
	if b.marker != "" {
		sb.WriteString(`<div class="myb-WinLossIndicator myb-WinLossIndicator-` + b.marker + `"></div>`)
	}
	div("myb-SettledBetItem_BetStateLabel", b.label)
	div("myb-BetParticipant_ParticipantSpan", b.selection)
	div("myb-BetParticipant_HeaderOdds", b.odd)
	div("myb-BetParticipant_MarketDescription", b.market)
	div("myb-BetParticipant_Team1Name", b.home)
	div("myb-BetParticipant_Team2Name", b.away)
	div("myb-SettledBetItemFooter_BetInformationText", b.ret)
	sb.WriteString(b.extra)
	sb.WriteString(`</div>`)

	return sb.String()
}

func page(items ...betFixture) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="myb-SettledBetsContainer">`)
	for _, it := range items {
		sb.WriteString(it.html())
	}
	sb.WriteString(`</div></body></html>`)
	return sb.String()
}

// fields extracts the raw fields of the first bet in markup.
func fields(t *testing.T, markup string) domain.RawFields {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	item := doc.Find(Bet365.Item).First()
	if item.Length() == 0 {
		t.Fatalf("fixture has no bet item")
	}

	return Bet365.Extract(item)
}

func asianFT(stake string) betFixture {
	return betFixture{
		stake:     stake,
		marker:    "won",
		selection: "Mais de 2,5",
		odd:       "1.85",
		market:    "Escanteios Asiáticos",
		home:      "Flamengo",
		away:      "Palmeiras",
	}
}
