package core

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	clockRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)
	overLineRe   = regexp.MustCompile(`mais\s*de\s*(\d+(?:[.,]\d+)?)`)
	nameNoiseRe  = regexp.MustCompile(`\b(fc|cf|sc|afc|united|city|club|team)\b`)
	nameCharsRe  = regexp.MustCompile(`[^a-z0-9 ]`)
	cardNoiseRe  = regexp.MustCompile(`(?i)N[úu]mero de Cart[õo]es aos \d+ Minutos`)
)

var dashes = strings.NewReplacer("–", "-", "—", "-", "−", "-")

// Fold strips diacritics, lower-cases, unifies dashes and collapses
// whitespace so market phrasings can be compared loosely.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	out = dashes.Replace(strings.ToLower(out))

	return strings.Join(strings.Fields(out), " ")
}

// clockRange finds the first "HH:MM - HH:MM" window in s and returns it
// zero-padded and without spaces, e.g. "00:00-09:59".
func clockRange(s string) (string, bool) {
	m := clockRangeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	return pad2(m[1]) + ":" + m[2] + "-" + pad2(m[3]) + ":" + m[4], true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// overLine returns the numeric line of an "over" selection ("Mais de 2,5").
func overLine(folded string) (string, bool) {
	m := overLineRe.FindStringSubmatch(folded)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// teamKey reduces a team or participant name to a comparable form.
func teamKey(s string) string {
	s = nameNoiseRe.ReplaceAllString(Fold(s), "")
	s = nameCharsRe.ReplaceAllString(s, "")

	return strings.Join(strings.Fields(s), " ")
}

func similarNames(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	return strings.Fields(a)[0] == strings.Fields(b)[0]
}
