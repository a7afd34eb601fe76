package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"turni/internal/backend"
	"turni/internal/cli"
	"turni/internal/core"
	"turni/internal/log"
	"turni/internal/tracker"
)

const usage = `Shift & Pay Tracker
Usage:
  turni --help
  turni --list
  turni --recent 7
  turni --add 2025-10-01 5.5 12.5 "Lunch shift"
  turni --monthly
  turni --summary
Files:
  data/shifts.csv (or the configured backend)
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)

	if len(args) == 0 || args[0] == "--help" {
		fmt.Print(usage)
		return 0
	}

	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(ctx, backend.ConfigFromApp(
		cfg.DataBackend, cfg.ShiftsFile, cfg.SQLiteDBPath,
		cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	tr, err := tracker.New(ctx, result.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	switch {
	case args[0] == "--add" && len(args) >= 4:
		return cmdAdd(ctx, tr, args[1:])
	case args[0] == "--list":
		return cmdList(tr)
	case args[0] == "--recent" && len(args) >= 2:
		return cmdRecent(tr, args[1])
	case args[0] == "--monthly":
		return cmdMonthly(tr)
	case args[0] == "--summary":
		return cmdSummary(tr, cfg.HighPayThreshold)
	}

	fmt.Fprintln(os.Stderr, "Unknown command. Use --help.")
	return 1
}

func cmdAdd(ctx context.Context, tr *tracker.Tracker, args []string) int {
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid hours %q\n", args[1])
		return 2
	}
	rate, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid rate %q\n", args[2])
		return 2
	}

	s := core.Shift{Date: args[0], Hours: hours, Rate: rate}
	if len(args) >= 4 {
		s.Note = args[3]
	}

	if err := tr.Add(ctx, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Printf("Added: %s\n", s.Record())
	return 0
}

func cmdList(tr *tracker.Tracker) int {
	for _, s := range tr.ListAllSorted() {
		fmt.Println(s.Record())
	}
	return 0
}

func cmdRecent(tr *tracker.Tracker, daysArg string) int {
	days, err := strconv.Atoi(daysArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid day count %q\n", daysArg)
		return 2
	}

	recent := tr.FilterRecentDays(days)
	for _, s := range recent {
		fmt.Println(s.Record())
	}
	fmt.Printf("Total pay in last %d days: %g\n", days, tr.TotalPay(recent))
	return 0
}

func cmdMonthly(tr *tracker.Tracker) int {
	for _, mt := range tr.MonthlyTotals() {
		fmt.Printf("%s,%g\n", mt.Month, mt.Total)
	}
	return 0
}

func cmdSummary(tr *tracker.Tracker, threshold float64) int {
	sum := tr.Summarize(threshold)
	fmt.Printf("Shifts: %d\n", sum.Shifts)
	fmt.Printf("Gross (pretax): %g\n", sum.Gross)
	fmt.Printf("Very rough PAYE estimate (yearly scaled): %g (for demo)\n", sum.TaxEstimate)
	fmt.Printf(">=£%g shifts: %d\n", threshold, sum.HighPay)
	return 0
}
