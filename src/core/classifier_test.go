package core

import (
	"testing"

	"mxshs/betledger/src/domain"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name        string
		classifier  Classifier
		f           domain.RawFields
		wantOK      bool
		wantMarket  string
		wantMinutes string
		wantSide    string
	}{
		{
			name:        "over05 full time asian line",
			classifier:  Over05{},
			f:           domain.RawFields{Market: "Escanteios Asiáticos", Selection: "Mais de 2,5"},
			wantOK:      true,
			wantMarket:  "Escanteios Asiáticos",
			wantMinutes: "80-Fim",
		},
		{
			name:        "over05 first half asian line",
			classifier:  Over05{},
			f:           domain.RawFields{Market: "1º Tempo - Escanteios Asiáticos", Selection: "Mais de 4.5"},
			wantOK:      true,
			wantMarket:  "1º Tempo - Escanteios Asiáticos",
			wantMinutes: "40-Int",
		},
		{
			name:        "over05 total corners",
			classifier:  Over05{},
			f:           domain.RawFields{Market: "Total de Escanteios", Selection: "Mais de 9.5"},
			wantOK:      true,
			wantMarket:  "Total de Escanteios",
			wantMinutes: "80-Fim",
		},
		{
			name:       "over05 time window from sub header",
			classifier: Over05{},
			f: domain.RawFields{
				Market:    "Escanteios",
				Selection: "Mais de 0.5",
				SubHeader: "Escanteios 10:00 - 19:59",
			},
			wantOK:      true,
			wantMarket:  "Escanteios",
			wantMinutes: "10:00-19:59",
		},
		{
			name:        "over05 textual window",
			classifier:  Over05{},
			f:           domain.RawFields{Market: "Escanteios", Selection: "Mais de 0.5 (40-Int)"},
			wantOK:      true,
			wantMarket:  "Escanteios",
			wantMinutes: "40-Int",
		},
		{
			name:        "over05 without window stays unresolved",
			classifier:  Over05{},
			f:           domain.RawFields{Market: "Escanteios", Selection: "Mais de 0.5"},
			wantOK:      true,
			wantMarket:  "Escanteios",
			wantMinutes: domain.NotFound,
		},
		{
			name:       "over05 ignores goals",
			classifier: Over05{},
			f:          domain.RawFields{Market: "Gols Mais/Menos", Selection: "Mais de 0.5"},
		},
		{
			name:        "zeroToTen by market phrase",
			classifier:  ZeroToTen{},
			f:           domain.RawFields{Market: "10 Minutos - Escanteios - 3 Opções", Selection: "Mais de 1"},
			wantOK:      true,
			wantMarket:  "10 Minutos - Escanteios - 3 Opções",
			wantMinutes: "0-10",
		},
		{
			name:        "zeroToTen by clock",
			classifier:  ZeroToTen{},
			f:           domain.RawFields{Market: "Escanteios", Selection: "Mais de 0.5 0:00 - 9:59"},
			wantOK:      true,
			wantMarket:  "Escanteios",
			wantMinutes: "0-10",
		},
		{
			name:       "zeroToTen other window",
			classifier: ZeroToTen{},
			f:          domain.RawFields{Market: "Escanteios", Selection: "Mais de 0.5 10:00 - 19:59"},
		},
		{
			name:        "asiaticosHT line",
			classifier:  AsiaticosHT{},
			f:           domain.RawFields{Market: "1º Tempo – Escanteios Asiáticos", Selection: "Mais de 4.5"},
			wantOK:      true,
			wantMarket:  "1º Tempo – Escanteios Asiáticos",
			wantMinutes: "4,5",
		},
		{
			name:       "asiaticosHT needs first half",
			classifier: AsiaticosHT{},
			f:          domain.RawFields{Market: "Escanteios Asiáticos", Selection: "Mais de 4.5"},
		},
		{
			name:       "asiaticosHT needs a line",
			classifier: AsiaticosHT{},
			f:          domain.RawFields{Market: "1º Tempo - Escanteios Asiáticos", Selection: "Menos de 4.5"},
		},
		{
			name:        "over15 first half",
			classifier:  Over15{},
			f:           domain.RawFields{Market: "1º Tempo - Gols", Selection: "Mais de 1.5"},
			wantOK:      true,
			wantMarket:  "1º Tempo - Gols",
			wantMinutes: "HT",
		},
		{
			name:        "over15 full match",
			classifier:  Over15{},
			f:           domain.RawFields{Market: "Gols no Jogo", Selection: "Mais de 1.5"},
			wantOK:      true,
			wantMarket:  "Gols no Jogo",
			wantMinutes: "FT",
		},
		{
			name:        "over15 unresolved",
			classifier:  Over15{},
			f:           domain.RawFields{Market: "Gols", Selection: "Mais de 1.5"},
			wantOK:      true,
			wantMarket:  "Gols",
			wantMinutes: domain.Unspecified,
		},
		{
			name:        "over15 goal lines only, goal market",
			classifier:  Over15{GoalLinesOnly: true},
			f:           domain.RawFields{Market: "1º Tempo - Gols", Selection: "Mais de 0.5"},
			wantOK:      true,
			wantMarket:  "1º Tempo - Gols",
			wantMinutes: "HT",
		},
		{
			name:        "over15 goal lines only, goal line selection",
			classifier:  Over15{GoalLinesOnly: true},
			f:           domain.RawFields{Market: "Total - Jogo", Selection: "Mais de 1,5"},
			wantOK:      true,
			wantMarket:  "Total - Jogo",
			wantMinutes: "FT",
		},
		{
			name:       "over15 goal lines only, result market",
			classifier: Over15{GoalLinesOnly: true},
			f:          domain.RawFields{Market: "1º Tempo - Resultado", Selection: "Santos"},
		},
		{
			name:       "race home side",
			classifier: Race{},
			f: domain.RawFields{
				Market:    "Primeiro a Marcar 5 Escanteios",
				Selection: "Real Madrid",
				HomeTeam:  "Real Madrid CF",
				AwayTeam:  "Barcelona",
			},
			wantOK:     true,
			wantMarket: "Race 5",
			wantSide:   domain.SideHome,
		},
		{
			name:       "race away side with accents",
			classifier: Race{},
			f: domain.RawFields{
				Market:    "Primeiro a marcar 7 escanteios",
				Selection: "Atlético Mineiro",
				HomeTeam:  "Grêmio",
				AwayTeam:  "Atletico Mineiro",
			},
			wantOK:     true,
			wantMarket: "Race 7",
			wantSide:   domain.SideAway,
		},
		{
			name:       "race unknown participant",
			classifier: Race{},
			f: domain.RawFields{
				Market:    "Primeiro a Marcar 3 Escanteios",
				Selection: "Nenhum",
				HomeTeam:  "Santos",
				AwayTeam:  "Bahia",
			},
			wantOK:     true,
			wantMarket: "Race 3",
		},
		{
			name:       "plus46 home team",
			classifier: Plus46{},
			f:          domain.RawFields{Market: "Escanteios - Time da Casa", Selection: "Mais de 4.0"},
			wantOK:     true,
			wantMarket: "+4",
			wantSide:   domain.SideHome,
		},
		{
			name:       "plus46 away team",
			classifier: Plus46{},
			f:          domain.RawFields{Market: "Escanteios - Time Visitante", Selection: "Mais de 6,0"},
			wantOK:     true,
			wantMarket: "+6",
			wantSide:   domain.SideAway,
		},
		{
			name:       "plus46 total",
			classifier: Plus46{},
			f:          domain.RawFields{Market: "Total de Escanteios", Selection: "Mais de 8.0"},
			wantOK:     true,
			wantMarket: "+8",
		},
		{
			name:       "plus46 other line",
			classifier: Plus46{},
			f:          domain.RawFields{Market: "Total de Escanteios", Selection: "Mais de 4.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim, ok := tt.classifier.Classify(&tt.f)
			if ok != tt.wantOK {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if claim.Room != tt.classifier.Room() {
				t.Errorf("room = %q, want %q", claim.Room, tt.classifier.Room())
			}
			if claim.Market != tt.wantMarket {
				t.Errorf("market = %q, want %q", claim.Market, tt.wantMarket)
			}
			if claim.Minutes != tt.wantMinutes {
				t.Errorf("minutes = %q, want %q", claim.Minutes, tt.wantMinutes)
			}
			if claim.Side != tt.wantSide {
				t.Errorf("side = %q, want %q", claim.Side, tt.wantSide)
			}
		})
	}
}

func TestAsianCornersBelongOnlyToOver05(t *testing.T) {
	f := domain.RawFields{
		Market:    "Escanteios Asiáticos",
		Selection: "Mais de 2,5",
		HomeTeam:  "Flamengo",
		AwayTeam:  "Palmeiras",
	}

	for _, c := range Family() {
		claim, ok := c.Classify(&f)
		switch c.Room() {
		case domain.RoomOver05:
			if !ok || claim.Minutes != "80-Fim" {
				t.Errorf("over05 claim = %+v, %v; want 80-Fim", claim, ok)
			}
		case domain.RoomZeroToTen, domain.RoomRace, domain.RoomAsiaticosHT, domain.RoomPlus46, domain.RoomOver15:
			if ok {
				t.Errorf("%s claimed an Asian full time line", c.Room())
			}
		}
	}
}

func TestParticipantSide(t *testing.T) {
	tests := []struct {
		participant, home, away, want string
	}{
		{"Real Madrid", "Real Madrid CF", "Barcelona", domain.SideHome},
		{"Barcelona", "Real Madrid CF", "FC Barcelona", domain.SideAway},
		{"Manchester United", "Manchester City", "Liverpool", domain.SideHome},
		{"", "Santos", "Bahia", ""},
		{"Santos", domain.NotFound, domain.NotFound, ""},
	}

	for _, tt := range tests {
		if got := participantSide(tt.participant, tt.home, tt.away); got != tt.want {
			t.Errorf("participantSide(%q, %q, %q) = %q, want %q", tt.participant, tt.home, tt.away, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, room := range Rooms() {
		if _, ok := Lookup(string(room)); !ok {
			t.Errorf("room %q has no parser", room)
		}
		if _, ok := ClassifierFor(room); !ok {
			t.Errorf("room %q has no classifier", room)
		}
	}

	if _, ok := Lookup("over25"); ok {
		t.Error("Lookup(over25) should fail")
	}
	if len(Rooms()) != len(Parsers) {
		t.Errorf("Rooms() has %d rooms, Parsers has %d", len(Rooms()), len(Parsers))
	}
}
