package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"mxshs/betledger/src/config"
	"mxshs/betledger/src/db"
	"mxshs/betledger/src/parser"
	"mxshs/betledger/src/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(envPath())
	if err != nil {
		fmt.Println(err.Error())
		return 1
	}

	room := flag.String("room", cfg.Room, "room to import (over05, zeroToTen, asiaticosHT, over15, race, plus46, all)")
	date := flag.String("date", time.Now().Format("2006-01-02"), "import date used when a bet carries none (YYYY-MM-DD)")
	renderPages := flag.Bool("render", cfg.Render, "load pages through headless Chrome")
	dryRun := flag.Bool("dry-run", false, "print the parsed bets as JSON instead of storing them")
	deleteDate := flag.String("delete-date", "", "delete every stored bet of this date and exit")
	list := flag.Bool("list", false, "print every stored bet as JSON and exit")
	flag.String("env", ".env", "path of the .env file")
	flag.Parse()

	if *deleteDate != "" {
		if err := deleteDay(cfg, *deleteDate); err != nil {
			fmt.Println(err.Error())
			return 1
		}
		return 0
	}

	if *list {
		if err := listBets(cfg); err != nil {
			fmt.Println(err.Error())
			return 1
		}
		return 0
	}

	if flag.NArg() == 0 {
		fmt.Println("[ERROR] No HTML files given")
		flag.Usage()
		return 2
	}

	var store parser.Store
	if !*dryRun {
		ledger, err := openLedger(cfg)
		if err != nil {
			fmt.Println(err.Error())
			return 1
		}
		defer ledger.Close()
		store = ledger
	}

	summary, err := parser.Import(
		flag.Args(),
		parser.Options{
			Room:    *room,
			Date:    *date,
			Render:  *renderPages,
			Workers: cfg.Workers,
			DryRun:  *dryRun,
		},
		render.NewRenderer(),
		store,
	)
	if err != nil {
		fmt.Println(err.Error())
		return 1
	}

	if *dryRun {
		if err := printJSON(summary.Bets); err != nil {
			fmt.Println(err.Error())
			return 1
		}
	}

	fmt.Println(outcome(summary))

	return 0
}

// outcome describes what an import did with the bets it found.
func outcome(summary *parser.Summary) string {
	r := summary.Report

	switch {
	case r.Fragments == 0:
		return "[INFO] No bet items found in the given files"
	case len(summary.Bets) > 0:
		return fmt.Sprintf("[INFO] %d new bets parsed, %d stored", len(summary.Bets), summary.Inserted)
	case r.Stored > 0:
		return fmt.Sprintf(
			"[INFO] No new bets: %d already stored, %d unrecognized, %d invalid, %d refunds",
			r.Stored, r.Unclaimed, r.Invalid, r.Refunds)
	default:
		return fmt.Sprintf(
			"[INFO] No valid bets: %d unrecognized, %d invalid, %d refunds",
			r.Unclaimed, r.Invalid, r.Refunds)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// envPath reads -env before flag parsing, since the flag defaults come from
// the file it names.
func envPath() string {
	for i, arg := range os.Args[1:] {
		switch {
		case arg == "-env" || arg == "--env":
			if i+2 < len(os.Args) {
				return os.Args[i+2]
			}
		case strings.HasPrefix(arg, "-env="), strings.HasPrefix(arg, "--env="):
			return arg[strings.Index(arg, "=")+1:]
		}
	}
	return ".env"
}

func openLedger(cfg *config.Config) (*db.DB, error) {
	ledger, err := db.GetDB(cfg.DSN())
	if err != nil {
		return nil, err
	}

	if err := ledger.Migrate(); err != nil {
		ledger.Close()
		return nil, fmt.Errorf("[ERROR] Failed to create schema: %w", err)
	}

	return ledger, nil
}

func listBets(cfg *config.Config) error {
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	bets, err := ledger.ListBets()
	if err != nil {
		return fmt.Errorf("[ERROR] Failed to list bets: %w", err)
	}

	return printJSON(bets)
}

func deleteDay(cfg *config.Config, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("[ERROR] Delete date must be YYYY-MM-DD, got %q", date)
	}

	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	n, err := ledger.DeleteByDate(date)
	if err != nil {
		return err
	}

	fmt.Printf("[INFO] Deleted %d bets of %s\n", n, date)

	return nil
}
