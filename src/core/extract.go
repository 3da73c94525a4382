package core

import (
	"strings"

	"mxshs/betledger/src/domain"

	"github.com/PuerkitoBio/goquery"
)

// lookup is one strategy for reading a field out of a bet fragment.
type lookup func(s *goquery.Selection) (string, bool)

func byText(selectors ...string) lookup {
	return func(s *goquery.Selection) (string, bool) {
		for _, sel := range selectors {
			if t := strings.TrimSpace(s.Find(sel).First().Text()); t != "" {
				return t, true
			}
		}
		return "", false
	}
}

func byClosest(container, selector string) lookup {
	return func(s *goquery.Selection) (string, bool) {
		t := strings.TrimSpace(s.Closest(container).Find(selector).First().Text())
		return t, t != ""
	}
}

func byBreadcrumbTail(selector string) lookup {
	return func(s *goquery.Selection) (string, bool) {
		parts := strings.Split(s.Find(selector).First().Text(), "/")
		t := strings.TrimSpace(parts[len(parts)-1])
		return t, t != ""
	}
}

func byAttr(selector, attr string) lookup {
	return func(s *goquery.Selection) (string, bool) {
		v, ok := s.Find(selector).First().Attr(attr)
		return v, ok && v != ""
	}
}

// firstOf returns the first non-empty value produced by the lookups, or
// fallback when none matched.
func firstOf(s *goquery.Selection, fallback string, lookups ...lookup) string {
	for _, l := range lookups {
		if v, ok := l(s); ok {
			return v
		}
	}
	return fallback
}

// Extract pulls every raw field out of one settled bet fragment. Missing
// fields come back as sentinels, never as errors.
func (sel Selector) Extract(s *goquery.Selection) domain.RawFields {
	return domain.RawFields{
		HomeTeam: firstOf(s, domain.NotFound, byText(sel.HomeTeam...)),
		AwayTeam: firstOf(s, domain.NotFound, byText(sel.AwayTeam...)),
		Championship: firstOf(s, domain.NoChampionship,
			byText(sel.Championship...),
			byBreadcrumbTail(sel.Breadcrumb),
		),
		Market:    cleanMarket(firstOf(s, "", byText(sel.Market...))),
		Selection: firstOf(s, "", byText(sel.Selection...)),
		SubHeader: firstOf(s, "", byText(sel.SubHeader...)),
		HeaderText: firstOf(s, "",
			byText(sel.HeaderText),
			byClosest(sel.BetHeader, sel.HeaderText),
		),
		Odd:          firstOf(s, "0", byText(sel.Odd...)),
		Stake:        firstOf(s, "0", byText(sel.Stake...)),
		Return:       firstOf(s, "", byText(sel.Return...)),
		StatusMarker: firstOf(s, "", byAttr(sel.Marker, "class")),
		StatusLabel:  firstOf(s, "", byText(sel.StatusLabel...)),
		ResultText:   firstOf(s, "", byText(sel.ResultText...)),
		Text:         s.Text(),
	}
}

// cleanMarket drops the card-count noise the bookmaker sometimes glues to
// corner market descriptions and flattens line breaks.
func cleanMarket(s string) string {
	s = cardNoiseRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
