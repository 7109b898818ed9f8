// Copyright (c) 2025 Quantsweep Corp

package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quantsweep/sweepbt/report"
	"github.com/quantsweep/sweepbt/strategy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test Launcher
func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "report suite")
}

func sampleStats() []strategy.Stats {
	return []strategy.Stats{
		{"name": "Config_0", "roi": 5.0, "trades": 3, "max_dd": 1.2},
		{"name": "Config_1", "roi": 12.0, "trades": 7, "max_dd": 2.4},
	}
}

var _ = Describe("Assemble", func() {
	It("sorts results by ROI descending", func() {
		result := report.Assemble("ofi-sweep", "ofi_momentum", sampleStats(), "2026-07-31T00:00:00Z")
		Expect(result.Results[0].Name).To(Equal("Config_1"))
		Expect(result.ExperimentID).To(HavePrefix("ofi-sweep-"))
	})

	It("gives each run a unique experiment id", func() {
		a := report.Assemble("x", "s", sampleStats(), "2026-07-31T00:00:00Z")
		b := report.Assemble("x", "s", sampleStats(), "2026-07-31T00:00:00Z")
		Expect(a.ExperimentID).ToNot(Equal(b.ExperimentID))
	})
})

var _ = Describe("WriteJSON", func() {
	It("round-trips a result to disk", func() {
		dir := GinkgoT().TempDir()
		result := report.Assemble("ofi-sweep", "ofi_momentum", sampleStats(), "2026-07-31T00:00:00Z")

		path, err := report.WriteJSON(dir, result)
		Expect(err).To(BeNil())
		Expect(path).To(Equal(filepath.Join(dir, result.ExperimentID, "results.json")))

		data, err := os.ReadFile(path)
		Expect(err).To(BeNil())
		Expect(string(data)).To(ContainSubstring("Config_1"))
	})
})

var _ = Describe("ValidateTimestamp", func() {
	It("accepts a valid ISO-8601 timestamp", func() {
		Expect(report.ValidateTimestamp("2026-07-31T00:00:00Z")).To(Succeed())
	})
	It("rejects a malformed timestamp", func() {
		Expect(report.ValidateTimestamp("not-a-timestamp")).ToNot(Succeed())
	})
})

var _ = Describe("ConsoleTable", func() {
	It("contains every result instance", func() {
		result := report.Assemble("ofi-sweep", "ofi_momentum", sampleStats(), "2026-07-31T00:00:00Z")
		table := report.ConsoleTable(result)
		Expect(table).To(And(ContainSubstring("Config_0"), ContainSubstring("Config_1")))
	})
})
