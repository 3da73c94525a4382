package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mxshs/betledger/src/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("mxshs/betledger/bet"))

// ImportReport counts what happened to every fragment of one import, so the
// caller can tell "nothing found" apart from "everything already stored".
type ImportReport struct {
	Fragments  int
	Refunds    int
	Unclaimed  int
	Invalid    int
	Duplicates int
	Stored     int
	Imported   int
}

// Importer turns a settled bets page into ledger records. It holds no state
// between calls; Now only stamps records and anchors year inference.
type Importer struct {
	Selector    Selector
	Classifiers []Classifier
	Now         func() time.Time
}

func NewImporter(classifiers ...Classifier) *Importer {
	return &Importer{
		Selector:    Bet365,
		Classifiers: classifiers,
		Now:         time.Now,
	}
}

// Import parses html and returns the valid, unique records not already in
// existing, in document order. It never fails: unparseable input yields an
// empty list.
func (im *Importer) Import(html string, importDate string, existing []domain.BetRecord) (bets []domain.BetRecord, report ImportReport) {
	bets = []domain.BetRecord{}

	defer func() {
		if r := recover(); r != nil {
			bets = []domain.BetRecord{}
			report = ImportReport{}
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return bets, report
	}

	now := im.Now()
	var candidates []domain.BetRecord

	doc.Find(im.Selector.Item).Each(func(i int, s *goquery.Selection) {
		report.Fragments++

		if strings.Contains(s.Text(), RefundMarker) {
			report.Refunds++
			return
		}

		f := im.Selector.Extract(s)

		claim := im.classify(&f)
		if claim == nil {
			report.Unclaimed++
			return
		}

		bet, ok := buildRecord(&f, claim, importDate, now)
		if !ok {
			report.Invalid++
			return
		}

		candidates = append(candidates, bet)
	})

	bets, report.Duplicates, report.Stored = Dedupe(candidates, existing)
	report.Imported = len(bets)

	return bets, report
}

// classify returns the claim of the first classifier that recognizes f.
func (im *Importer) classify(f *domain.RawFields) *domain.Claim {
	for _, c := range im.Classifiers {
		if claim, ok := c.Classify(f); ok {
			return claim
		}
	}
	return nil
}

func buildRecord(f *domain.RawFields, claim *domain.Claim, importDate string, now time.Time) (domain.BetRecord, bool) {
	status := NormalizeStatus(f)
	if claim.DropVoid && status == domain.StatusVoid {
		return domain.BetRecord{}, false
	}

	stake := ParseLocaleNumber(f.Stake)
	odd := ParseOdd(f.Odd)

	var ret float64
	if f.Return != "" {
		ret = ParseLocaleNumber(f.Return)
	}

	settled := Settle(odd, status, stake, ret)

	minutes := claim.Minutes
	if minutes == "" {
		minutes = genericMinutes(f)
	} else if minutes == domain.NotFound || minutes == domain.Unspecified {
		return domain.BetRecord{}, false
	}

	if stake <= 0 || settled.Odd <= 0 {
		return domain.BetRecord{}, false
	}
	if f.HomeTeam == domain.NotFound && f.AwayTeam == domain.NotFound {
		return domain.BetRecord{}, false
	}

	date := importDate
	if d, ok := parseLocaleDateAt(f.HeaderText, now); ok {
		date = d
	} else if d, ok := parseLocaleDateAt(f.SubHeader, now); ok {
		date = d
	}

	bet := domain.BetRecord{
		Date:           date,
		Championship:   f.Championship,
		Match:          f.HomeTeam + " vs " + f.AwayTeam,
		HomeTeam:       f.HomeTeam,
		AwayTeam:       f.AwayTeam,
		Market:         claim.Market,
		MarketCategory: claim.Room,
		MarketMinutes:  minutes,
		Selection:      f.Selection,
		Odd:            settled.Odd,
		Stake:          stake,
		Status:         status,
		Profit:         settled.Profit,
		CF:             claim.Side,
		ResultText:     f.ResultText,
		Timestamp:      now,
	}
	bet.ID = RecordID(bet)

	return bet, true
}

// genericMinutes is the window read for rooms that have none of their own.
func genericMinutes(f *domain.RawFields) string {
	if clock, ok := clockRange(f.Selection + " " + f.SubHeader + " " + f.Market); ok {
		return clock
	}
	return windowLabel(Fold(f.Selection))
}

// IdentityKey is the normalized text a record id is derived from. Each
// field is lower-cased with its whitespace runs turned into "-", and fields
// are joined with "|".
func IdentityKey(b domain.BetRecord) string {
	fields := []string{
		b.Date,
		b.HomeTeam,
		b.AwayTeam,
		b.Market,
		b.MarketMinutes,
		b.Selection,
		strconv.FormatFloat(b.Stake, 'f', -1, 64),
	}

	for i, f := range fields {
		fields[i] = strings.Join(strings.Fields(strings.ToLower(f)), "-")
	}

	return strings.Join(fields, "|")
}

// RecordID derives a stable id, so re-importing the same page produces the
// same ids.
func RecordID(b domain.BetRecord) string {
	return uuid.NewSHA1(idNamespace, []byte(IdentityKey(b))).String()
}

func equalityKey(b domain.BetRecord) string {
	return fmt.Sprintf("%s|%s|%s|%g|%g|%s|%s|%s|%s",
		b.Match, b.Market, b.Date, b.Odd, b.Stake,
		b.HomeTeam, b.AwayTeam, b.MarketMinutes, b.Championship)
}

// Dedupe keeps the first record of every id in bets and drops records that
// existing already holds, either by id or by full field equality.
func Dedupe(bets []domain.BetRecord, existing []domain.BetRecord) (out []domain.BetRecord, duplicates int, stored int) {
	storedIDs := make(map[string]bool, len(existing))
	storedKeys := make(map[string]bool, len(existing))
	for _, b := range existing {
		storedIDs[b.ID] = true
		storedKeys[equalityKey(b)] = true
	}

	out = []domain.BetRecord{}
	seen := make(map[string]bool, len(bets))

	for _, b := range bets {
		if seen[b.ID] {
			duplicates++
			continue
		}
		seen[b.ID] = true

		if storedIDs[b.ID] || storedKeys[equalityKey(b)] {
			stored++
			continue
		}

		out = append(out, b)
	}

	return out, duplicates, stored
}
