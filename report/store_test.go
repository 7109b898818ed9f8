// Copyright (c) 2025 Quantsweep Corp

package report_test

import (
	"context"

	"github.com/quantsweep/sweepbt/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	It("appends a result and returns the top N by metric", func() {
		store, err := report.OpenStore(":memory:")
		Expect(err).To(BeNil())
		defer store.Close()

		ctx := context.Background()
		result := report.Assemble("ofi-sweep", "ofi_momentum", sampleStats(), "2026-07-31T00:00:00Z")
		Expect(store.Append(ctx, result)).To(Succeed())

		rows, err := store.TopN(ctx, "roi", 1, "", "")
		Expect(err).To(BeNil())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Name).To(Equal("Config_1"))
	})

	It("filters by strategy name", func() {
		store, err := report.OpenStore(":memory:")
		Expect(err).To(BeNil())
		defer store.Close()

		ctx := context.Background()
		a := report.Assemble("a", "ofi_momentum", sampleStats(), "2026-07-31T00:00:00Z")
		b := report.Assemble("b", "bollinger_reversion", sampleStats(), "2026-07-31T00:00:00Z")
		_ = store.Append(ctx, a)
		_ = store.Append(ctx, b)

		rows, err := store.TopN(ctx, "roi", 10, "bollinger_reversion", "")
		Expect(err).To(BeNil())
		for _, r := range rows {
			Expect(r.Strategy).To(Equal("bollinger_reversion"))
		}
	})
})
