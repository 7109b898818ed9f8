// Copyright (c) 2025 Quantsweep Corp

// Package report assembles per-strategy stats into a persisted JSON
// report and console table, and backs them with a queryable results
// store.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/relvacode/iso8601"
	json "github.com/segmentio/encoding/json"

	"github.com/quantsweep/sweepbt/strategy"
)

// Result is one strategy instance's reported metrics, flattened for JSON
// and console display.
type Result struct {
	Name   string         `json:"name"`
	ROI    float64        `json:"roi"`
	Trades int            `json:"trades"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// ExperimentResult is the top-level persisted document: one run's
// identity, timestamp, and every strategy instance's result.
type ExperimentResult struct {
	ExperimentID string    `json:"experiment_id"`
	Timestamp    string    `json:"timestamp"`
	Strategy     string    `json:"strategy"`
	Results      []Result  `json:"results"`
}

// Assemble converts raw per-instance Stats into a sorted ExperimentResult.
// experimentName is suffixed with a short unique id so repeated runs of
// the same experiment never collide on disk or in the results store.
// nowISO8601 is the caller-supplied current timestamp already formatted
// as ISO-8601 (engine code must not call time.Now itself so that report
// assembly stays a pure, testable function).
func Assemble(experimentName, strategyName string, stats []strategy.Stats, nowISO8601 string) ExperimentResult {
	results := make([]Result, 0, len(stats))
	for _, s := range stats {
		r := Result{Extra: make(map[string]any)}
		for k, v := range s {
			switch k {
			case "name":
				r.Name, _ = v.(string)
			case "roi":
				r.ROI, _ = v.(float64)
			case "trades":
				r.Trades, _ = v.(int)
			default:
				r.Extra[k] = v
			}
		}
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].ROI > results[j].ROI })

	return ExperimentResult{
		ExperimentID: experimentName + "-" + uuid.New().String()[:8],
		Timestamp:    nowISO8601,
		Strategy:     strategyName,
		Results:      results,
	}
}

// ValidateTimestamp parses an ISO-8601 string, returning an error if it is
// malformed. Used by callers loading a persisted report back in, to
// confirm its timestamp round-trips through the same parser that wrote
// it.
func ValidateTimestamp(s string) error {
	_, err := iso8601.ParseString(s)
	return err
}

// WriteJSON persists result under reports/<experiment_id>/results.json,
// creating the directory if needed.
func WriteJSON(reportsDir string, result ExperimentResult) (string, error) {
	dir := filepath.Join(reportsDir, result.ExperimentID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report dir: %w", err)
	}
	path := filepath.Join(dir, "results.json")

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// ConsoleTable renders result as a plain-text table sorted by ROI
// descending (Assemble already sorts; this just formats), with
// human-scaled numbers via go-humanize.
func ConsoleTable(result ExperimentResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Experiment %s (%s)\n", result.ExperimentID, result.Strategy)
	fmt.Fprintf(&b, "%-16s %10s %8s\n", "NAME", "ROI %", "TRADES")
	for _, r := range result.Results {
		fmt.Fprintf(&b, "%-16s %10.2f %8s\n", r.Name, r.ROI, humanize.Comma(int64(r.Trades)))
	}
	return b.String()
}
