// Package stats aggregates per-run and historical usage statistics.
package stats

import (
	"fmt"
	"sort"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/ports"
)

// Usage is the fold of a set of HistoryRecords. It is computed from the
// records alone, never by re-deriving pipeline state.
type Usage struct {
	Attempts    int
	Matches     int
	NoMatches   int
	Executed    int
	Failed      int
	DryRun      int
	Skipped     int
	Faults      int
	Safe        int
	Destructive int
	PerCategory map[domain.Category]int
	TopPatterns []PatternCount
}

// PatternCount pairs a pattern description with its usage count.
type PatternCount struct {
	Description string
	Count       int
}

// Service computes usage statistics from the history repository.
type Service struct {
	History ports.HistoryRepository
}

// Usage loads all records and folds them.
func (s *Service) Usage() (Usage, []domain.HistoryRecord, error) {
	if s.History == nil {
		return Usage{}, nil, fmt.Errorf("history store unavailable")
	}
	records, err := s.History.Records(0, "")
	if err != nil {
		return Usage{}, nil, fmt.Errorf("load history: %w", err)
	}
	return Fold(records), records, nil
}

// Fold aggregates records into Usage.
func Fold(records []domain.HistoryRecord) Usage {
	usage := Usage{PerCategory: make(map[domain.Category]int)}
	patternFreq := make(map[string]int)

	for _, rec := range records {
		usage.Attempts++
		switch rec.Outcome {
		case domain.OutcomeNoMatch:
			usage.NoMatches++
			continue
		case domain.OutcomeExecuted:
			usage.Executed++
		case domain.OutcomeFailed:
			usage.Failed++
		case domain.OutcomeDryRun:
			usage.DryRun++
		case domain.OutcomeSkippedByUser:
			usage.Skipped++
		case domain.OutcomeGenerationFault:
			usage.Faults++
		}
		usage.Matches++
		if rec.Safe {
			usage.Safe++
		} else {
			usage.Destructive++
		}
		if rec.Category != "" {
			usage.PerCategory[rec.Category]++
		}
		if rec.Description != "" {
			patternFreq[rec.Description]++
		}
	}

	usage.TopPatterns = topPatterns(patternFreq, 5)
	return usage
}

// topPatterns ranks pattern descriptions by count (descending), breaking
// ties alphabetically.
func topPatterns(freq map[string]int, limit int) []PatternCount {
	counts := make([]PatternCount, 0, len(freq))
	for desc, count := range freq {
		counts = append(counts, PatternCount{Description: desc, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Description < counts[j].Description
		}
		return counts[i].Count > counts[j].Count
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
