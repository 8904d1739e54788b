package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/item"
	"github.com/ArmaRealms/ToolStats/internal/validation"
)

// CheckConfigCommand loads config.yml and prints what the tracker will use
type CheckConfigCommand struct {
	cfg *config.Config
}

func (c *CheckConfigCommand) Name() string { return "check-config" }

func (c *CheckConfigCommand) Description() string {
	return "Validate config.yml and show the effective templates and switches"
}

func (c *CheckConfigCommand) Run(args []string) error {
	path := c.cfg.ToolStatsPath
	if len(args) > 0 {
		path = args[0]
	}

	initCLILogger(c.cfg)
	ts, err := config.LoadToolStats(context.Background(), path, item.NewClassifier())
	if err != nil {
		PrintError("%v", err)
		return err
	}

	PrintHeader("Templates")
	for _, kind := range domain.StatKinds {
		if tmpl, ok := ts.LoreTemplate(kind, true); ok {
			PrintSuccess("%-13s %s", kind, stripColors(tmpl))
		} else {
			PrintWarning("%-13s missing, counters are kept without a description", kind)
		}
	}

	PrintHeader("Descriptions")
	for _, kind := range []domain.StatKind{domain.StatPlayerKills, domain.StatMobKills} {
		for _, family := range item.WeaponFamilies {
			printSwitch(fmt.Sprintf("%s/%s", kind, family), ts.IsFamilyEnabled(kind, family))
		}
	}
	printSwitch(string(domain.StatArmorDamage), ts.IsArmorDamageEnabled())

	PrintInfo("number locale: %s", ts.Locale())
	return nil
}

func printSwitch(name string, enabled bool) {
	if enabled {
		PrintSuccess("%s", name)
	} else {
		PrintWarning("%s disabled", name)
	}
}

// ValidateCommand checks scenario files against the scenario schema
type ValidateCommand struct{}

func (c *ValidateCommand) Name() string { return "validate" }

func (c *ValidateCommand) Description() string {
	return "Check scenario files against the scenario schema"
}

func (c *ValidateCommand) Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: toolstats validate <scenario.yaml>...")
	}

	v := validation.NewSchemaValidator()
	failed := 0
	for _, path := range args {
		if err := v.ValidateFile(path, validation.SchemaScenario); err != nil {
			PrintError("%s: %v", path, err)
			failed++
			continue
		}
		PrintSuccess("%s", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}
