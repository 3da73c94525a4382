package parser

import (
	"fmt"
	"sync"
	"time"

	"mxshs/betledger/src/core"
	"mxshs/betledger/src/domain"
)

// RoomAll runs every classifier instead of a single room.
const RoomAll = "all"

type Store interface {
	BetsOn(dates []string) ([]domain.BetRecord, error)
	InsertBets(bets []domain.BetRecord) (int, error)
}

type Loader interface {
	Load(path string, render bool) (string, error)
}

type Options struct {
	Room    string
	Date    string
	Render  bool
	Workers int
	DryRun  bool
}

type Summary struct {
	Files    int
	Failed   int
	Report   core.ImportReport
	Bets     []domain.BetRecord
	Inserted int
}

type fileResult struct {
	bets   []domain.BetRecord
	report core.ImportReport
	err    error
}

// Import parses every file with the chosen room, merges the batches, drops
// what the store already holds for the days involved and writes the rest.
// store may be nil for a dry run without a database.
func Import(paths []string, opts Options, loader Loader, store Store) (*Summary, error) {
	if _, err := time.Parse("2006-01-02", opts.Date); err != nil {
		return nil, fmt.Errorf("[ERROR] Import date must be YYYY-MM-DD, got %q", opts.Date)
	}

	classifiers, err := resolveRoom(opts.Room)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]fileResult, len(paths))

	i := 0

	for i < len(paths) {

		counter := workers

		var wg sync.WaitGroup

		for i < len(paths) && counter > 0 {

			wg.Add(1)
			idx := i

			go func() {
				defer wg.Done()

				html, err := loader.Load(paths[idx], opts.Render)
				if err != nil {
					results[idx].err = err
					return
				}

				results[idx].bets, results[idx].report = core.NewImporter(classifiers...).Import(
					html, opts.Date, nil)
			}()

			counter -= 1
			i += 1
		}

		wg.Wait()
	}

	summary := &Summary{Files: len(paths)}
	var batch []domain.BetRecord

	for idx, r := range results {
		if r.err != nil {
			fmt.Println(r.err.Error())
			summary.Failed++
			continue
		}

		fmt.Printf(
			"[INFO] %s: %d bet items, %d valid, %d refunds, %d unrecognized, %d invalid\n",
			paths[idx],
			r.report.Fragments,
			r.report.Imported,
			r.report.Refunds,
			r.report.Unclaimed,
			r.report.Invalid,
		)

		summary.Report = addReports(summary.Report, r.report)
		batch = append(batch, r.bets...)
	}

	var existing []domain.BetRecord
	if store != nil {
		existing, err = store.BetsOn(betDates(batch))
		if err != nil {
			return nil, fmt.Errorf("[ERROR] Failed to load stored bets: %w", err)
		}
	}

	merged, duplicates, stored := core.Dedupe(batch, existing)
	summary.Report.Duplicates += duplicates
	summary.Report.Stored += stored
	summary.Report.Imported = len(merged)
	summary.Bets = merged

	if opts.DryRun || store == nil || len(merged) == 0 {
		return summary, nil
	}

	summary.Inserted, err = store.InsertBets(merged)
	if err != nil {
		return summary, err
	}

	return summary, nil
}

// betDates lists the distinct days of bets in first seen order.
func betDates(bets []domain.BetRecord) []string {
	seen := make(map[string]bool)
	var dates []string

	for _, b := range bets {
		if !seen[b.Date] {
			seen[b.Date] = true
			dates = append(dates, b.Date)
		}
	}

	return dates
}

func resolveRoom(room string) ([]core.Classifier, error) {
	if room == RoomAll {
		return core.Family(), nil
	}

	c, ok := core.ClassifierFor(domain.Room(room))
	if !ok {
		return nil, fmt.Errorf("[ERROR] Unknown room %q (known: %v, %s)", room, core.Rooms(), RoomAll)
	}

	return []core.Classifier{c}, nil
}

func addReports(a, b core.ImportReport) core.ImportReport {
	return core.ImportReport{
		Fragments:  a.Fragments + b.Fragments,
		Refunds:    a.Refunds + b.Refunds,
		Unclaimed:  a.Unclaimed + b.Unclaimed,
		Invalid:    a.Invalid + b.Invalid,
		Duplicates: a.Duplicates + b.Duplicates,
		Stored:     a.Stored + b.Stored,
		Imported:   a.Imported + b.Imported,
	}
}
