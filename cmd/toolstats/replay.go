package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ArmaRealms/ToolStats/internal/bootstrap"
	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/scenario"
)

// ReplayCommand runs scenario files against a fresh tracker each
type ReplayCommand struct {
	cfg *config.Config
}

func (c *ReplayCommand) Name() string { return "replay" }

func (c *ReplayCommand) Description() string {
	return "Replay scenario files and print the resulting item statistics"
}

func (c *ReplayCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the full execution result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: toolstats replay [-json] <scenario.yaml>...")
	}

	initCLILogger(c.cfg)
	ctx := context.Background()
	loader := scenario.NewLoader(nil)

	failed := 0
	for _, path := range fs.Args() {
		sc, err := loader.Load(path)
		if err != nil {
			return err
		}

		// each file gets its own tracker so death records do not carry over
		tracker, err := bootstrap.NewTracker(ctx, c.cfg)
		if err != nil {
			return err
		}

		engine := scenario.NewEngine(tracker.Bus, tracker.Scheduler, tracker.Codec)
		result, err := engine.Execute(ctx, *sc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if *asJSON {
			if err := result.WriteJSON(os.Stdout); err != nil {
				return err
			}
		} else {
			printResult(path, result)
		}

		if !result.Success {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, fs.NArg())
	}
	return nil
}

func printResult(path string, result *scenario.ExecutionResult) {
	PrintHeader(fmt.Sprintf("%s (%s)", result.ScenarioName, path))

	for _, step := range result.Steps {
		if !step.Success {
			PrintError("%s", step.Error)
		}
	}

	for _, p := range result.Report.Players {
		name := p.Name
		if p.Removed {
			name += " (dead)"
		}
		PrintInfo("%s", name)
		for _, it := range slices.Concat(p.Inventory, p.Armor) {
			printItem(it)
		}
	}
	for _, it := range result.Report.Thrown {
		printItem(it)
	}

	for _, a := range result.Assertions {
		if a.Passed {
			PrintSuccess("%s %s", a.Target, a.Stat)
		} else {
			PrintError("%s %s: %s", a.Target, a.Stat, a.Error)
		}
	}

	tally := result.Tally()
	msg := fmt.Sprintf("%d/%d steps, %d/%d expectations, %d ticks",
		tally.PassedSteps, tally.Steps,
		tally.PassedAssertions, tally.Assertions,
		result.Ticks)
	if result.Success {
		PrintSuccess("%s", msg)
	} else {
		PrintWarning("%s", msg)
	}
}

func printItem(it scenario.ItemReport) {
	var stats []string
	for _, kind := range domain.StatKinds {
		if v, ok := it.Stats[string(kind)]; ok {
			stats = append(stats, fmt.Sprintf("%s=%g", kind, v))
		}
	}
	fmt.Printf("    %-14s %-20s %s\n", it.Holder, it.Material, strings.Join(stats, " "))
	for _, line := range it.Lore {
		fmt.Printf("    %14s   %s\n", "", stripColors(line))
	}
}

// stripColors drops section-sign color codes for plain terminal output
func stripColors(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == config.ColorChar && i+1 < len(runes) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
