// Copyright (c) 2025 Quantsweep Corp

package config_test

import (
	"testing"

	"github.com/quantsweep/sweepbt/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test Launcher
func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "config suite")
}

const sampleTOML = `
experiment_name = "ofi-sweep"
strategy = "ofi_momentum"

[data]
path = "data/ticks.csv"

[optimization]
method = "monte_carlo"
samples = 50
seed = 7

[parameters.window]
type = "int"
distribution = "uniform"
min = 10
max = 500

[parameters.threshold]
type = "float"
distribution = "log_uniform"
min = 0.1
max = 50

[constraints]
min_trades = 5
`

var _ = Describe("Parse", func() {
	It("parses a complete experiment config", func() {
		cfg, err := config.Parse([]byte(sampleTOML))
		Expect(err).To(BeNil())

		Expect(cfg.ExperimentName).To(Equal("ofi-sweep"))
		Expect(cfg.Strategy).To(Equal("ofi_momentum"))
		Expect(cfg.Optimization.Samples).To(Equal(50))
		Expect(cfg.Optimization.Seed).ToNot(BeNil())
		Expect(*cfg.Optimization.Seed).To(Equal(int64(7)))

		Expect(cfg.Parameters).To(HaveLen(2))
		Expect(cfg.Parameters[0].Name).To(Equal("window"))
		Expect(cfg.Parameters[1].Name).To(Equal("threshold"))

		Expect(cfg.Constraints["min_trades"]).To(Equal(5.0))
	})

	It("rejects a config with no strategy", func() {
		_, err := config.Parse([]byte(`
experiment_name = "x"
[optimization]
samples = 1
`))
		Expect(err).ToNot(BeNil())
	})

	It("rejects samples < 1", func() {
		_, err := config.Parse([]byte(`
strategy = "ofi_momentum"
[optimization]
samples = 0
`))
		Expect(err).ToNot(BeNil())
	})

	It("rejects a parameter with no values and no min/max", func() {
		_, err := config.Parse([]byte(`
strategy = "ofi_momentum"
[optimization]
samples = 10
[parameters.window]
type = "int"
`))
		Expect(err).ToNot(BeNil())
	})

	It("defaults experiment name and parallel workers", func() {
		cfg, err := config.Parse([]byte(`
strategy = "ofi_momentum"
[optimization]
samples = 1
`))
		Expect(err).To(BeNil())
		Expect(cfg.ExperimentName).To(Equal("unnamed"))
		Expect(cfg.Optimization.ParallelWorkers).To(Equal(1))
	})
})
