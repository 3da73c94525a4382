package core

import (
	"strings"

	"mxshs/betledger/src/domain"
)

// RefundMarker is the literal text of pushed bets; such fragments are not
// part of the betting history and are skipped before classification.
const RefundMarker = "Reembolso(Push)"

var markerStatus = []struct {
	class  string
	status domain.Status
}{
	{"myb-WinLossIndicator-won", domain.StatusWon},
	{"myb-WinLossIndicator-lost", domain.StatusLost},
	{"myb-WinLossIndicator-void", domain.StatusVoid},
	{"myb-WinLossIndicator-cashout", domain.StatusCashedOut},
}

var labelStatus = map[string]domain.Status{
	"ganha":           domain.StatusWon,
	"ganhou":          domain.StatusWon,
	"venceu":          domain.StatusWon,
	"won":             domain.StatusWon,
	"perdida":         domain.StatusLost,
	"perdeu":          domain.StatusLost,
	"lost":            domain.StatusLost,
	"devolvida":       domain.StatusVoid,
	"reembolso(push)": domain.StatusVoid,
	"reembolso":       domain.StatusVoid,
	"push":            domain.StatusVoid,
	"encerrada":       domain.StatusCashedOut,
	"cashout":         domain.StatusCashedOut,
	"cash out":        domain.StatusCashedOut,
}

// Checked in order when the label is not an exact synonym, so "encerrada"
// must come before the shorter outcome words it may contain.
var labelFragments = []struct {
	text   string
	status domain.Status
}{
	{"encerrada", domain.StatusCashedOut},
	{"cash out", domain.StatusCashedOut},
	{"cashout", domain.StatusCashedOut},
	{"reembolso", domain.StatusVoid},
	{"devolvida", domain.StatusVoid},
	{"ganha", domain.StatusWon},
	{"ganhou", domain.StatusWon},
	{"perdida", domain.StatusLost},
	{"perdeu", domain.StatusLost},
}

// NormalizeStatus maps the marker class or, failing that, the state label of
// a bet to one canonical status. Anything unrecognized is pending.
func NormalizeStatus(f *domain.RawFields) domain.Status {
	classes := strings.Fields(f.StatusMarker)
	for _, m := range markerStatus {
		for _, c := range classes {
			if c == m.class {
				return m.status
			}
		}
	}

	label := strings.ToLower(strings.TrimSpace(f.StatusLabel))
	if label == "" {
		return domain.StatusPending
	}
	if st, ok := labelStatus[label]; ok {
		return st
	}

	for _, l := range labelFragments {
		if strings.Contains(label, l.text) {
			return l.status
		}
	}

	return domain.StatusPending
}
