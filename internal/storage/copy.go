package storage

import "fmt"

// CopyStats counts what Copy moved.
type CopyStats struct {
	Records   int
	Decisions int
	Entries   int
}

// Copy writes settings, records, decisions and entries from src into dst.
// Both stores must already be loaded. Soft-deleted rows keep their state.
func Copy(src, dst Provider, progress func(string)) (CopyStats, error) {
	if progress == nil {
		progress = func(string) {}
	}
	var stats CopyStats

	progress("Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return stats, fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return stats, fmt.Errorf("failed to save settings to destination: %w", err)
	}

	progress("Copying daily records...")
	records, err := src.GetAllRecords()
	if err != nil {
		return stats, fmt.Errorf("failed to get records from source: %w", err)
	}
	for _, r := range records {
		if err := dst.UpsertRecord(r); err != nil {
			return stats, fmt.Errorf("failed to save record %s: %w", r.EntryDate, err)
		}
		stats.Records++
	}

	progress("Copying decisions...")
	decisions, err := src.GetAllDecisions()
	if err != nil {
		return stats, fmt.Errorf("failed to get decisions from source: %w", err)
	}
	for _, d := range decisions {
		if err := dst.AddDecision(d); err != nil {
			return stats, fmt.Errorf("failed to add decision %s: %w", d.ID, err)
		}
		stats.Decisions++
	}

	progress("Copying journal entries...")
	entries, err := src.GetAllEntries()
	if err != nil {
		return stats, fmt.Errorf("failed to get entries from source: %w", err)
	}
	for _, e := range entries {
		if err := dst.AddEntry(e); err != nil {
			return stats, fmt.Errorf("failed to add entry %s: %w", e.ID, err)
		}
		stats.Entries++
	}

	return stats, nil
}
