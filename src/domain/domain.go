package domain

import "time"

// Sentinels used when a field could not be found in the source markup.
const (
	NotFound       = "N/A"
	Unspecified    = "Não especificado"
	NoChampionship = "Campeonato não identificado"
)

type Status string

const (
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
	StatusVoid      Status = "void"
	StatusCashedOut Status = "cashed_out"
	StatusPending   Status = "pending"
)

// Room identifies a betting market category understood by the ledger.
type Room string

const (
	RoomOver05      Room = "over05"
	RoomZeroToTen   Room = "zeroToTen"
	RoomAsiaticosHT Room = "asiaticosHT"
	RoomOver15      Room = "over15"
	RoomRace        Room = "race"
	RoomPlus46      Room = "plus46"
)

const (
	SideHome = "CASA"
	SideAway = "FORA"
)

type BetRecord struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Championship   string    `json:"championship"`
	Match          string    `json:"match"`
	HomeTeam       string    `json:"homeTeam"`
	AwayTeam       string    `json:"awayTeam"`
	Market         string    `json:"market"`
	MarketCategory Room      `json:"marketCategory"`
	MarketMinutes  string    `json:"marketMinutes"`
	Selection      string    `json:"selection"`
	Odd            float64   `json:"odd"`
	Stake          float64   `json:"stake"`
	Status         Status    `json:"status"`
	Profit         float64   `json:"profit"`
	CF             string    `json:"cf,omitempty"`
	ResultText     string    `json:"resultText,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// RawFields holds the strings pulled out of one settled bet fragment,
// before any numeric or status normalization.
type RawFields struct {
	HomeTeam     string
	AwayTeam     string
	Championship string
	Market       string
	Selection    string
	SubHeader    string
	HeaderText   string
	Odd          string
	Stake        string
	Return       string
	StatusMarker string
	StatusLabel  string
	ResultText   string
	Text         string
}

// Claim is what a classifier attaches to a record it recognizes. An empty
// Minutes means the room has no time window of its own.
type Claim struct {
	Room     Room
	Market   string
	Minutes  string
	Side     string
	DropVoid bool
}
