// Copyright (c) 2025 Quantsweep Corp

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quantsweep/sweepbt/internal/tui"
	"github.com/quantsweep/sweepbt/strategy"
)

func main() {
	registry := strategy.RegisterAll()
	if err := tui.RunWizard(context.Background(), registry); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
