// Package commands holds the CLI command objects wiring the stores and
// services together.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/dzcontrol/planner/pkg/application/services/planning"
	"github.com/dzcontrol/planner/pkg/domain/entities"
	"github.com/dzcontrol/planner/pkg/domain/services/requirements"
	"github.com/dzcontrol/planner/pkg/infrastructure/repositories/jsonfile"
	"github.com/dzcontrol/planner/pkg/interfaces/cli/output"
	"github.com/dzcontrol/planner/pkg/logger"
)

// Reports lists the reports the plan command can produce.
const (
	ReportNeeds     = "needs"
	ReportPlan      = "plan"
	ReportShortages = "shortages"
	ReportKfc       = "kfc"
)

// Config holds configuration for the plan command
type Config struct {
	DataDir string
	Date    string
	Filter  string // "", "kfc", "non-kfc"
	Report  string
	Format  string
	Verbose bool
	Help    bool
}

// PlanCommand loads the planning document and renders one report
type PlanCommand struct {
	config Config
	log    *logger.Logger
}

// NewPlanCommand creates a plan command with the given configuration
func NewPlanCommand(config Config, log *logger.Logger) *PlanCommand {
	return &PlanCommand{config: config, log: log}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	day := entities.Day(c.config.Date)
	if c.config.Date == "" {
		day = entities.Today()
	}

	store := jsonfile.NewStore(c.config.DataDir)
	doc, applied, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	c.log.Debug("document loaded", "path", store.Path(),
		"materials", len(doc.Materials), "orders", len(doc.Orders))

	if len(applied) > 0 {
		c.log.Info("document migrated", "migrations", applied)
		if err := store.Save(doc); err != nil {
			return fmt.Errorf("failed to save migrated document: %w", err)
		}
	}

	reports := planning.NewReportService()
	switch c.config.Report {
	case ReportNeeds:
		return c.renderNeeds(reports, doc, day)
	case ReportPlan:
		return c.renderPlan(reports, doc, day)
	case ReportShortages:
		return c.renderShortages(reports, doc, day)
	case ReportKfc:
		return c.renderKfc(reports, doc, day)
	default:
		return fmt.Errorf("unknown report: %s", c.config.Report)
	}
}

func (c *PlanCommand) validateInputs() error {
	if c.config.Date != "" && !entities.Day(c.config.Date).Valid() {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.config.Date)
	}
	switch c.config.Filter {
	case "", string(requirements.FilterKfc), string(requirements.FilterNonKfc):
	default:
		return fmt.Errorf("invalid filter %q, expected kfc or non-kfc", c.config.Filter)
	}
	switch c.config.Report {
	case ReportNeeds, ReportPlan, ReportShortages, ReportKfc:
	default:
		return fmt.Errorf("invalid report %q, expected needs, plan, shortages or kfc", c.config.Report)
	}
	switch c.config.Format {
	case output.FormatText, output.FormatJSON, output.FormatCSV:
	default:
		return fmt.Errorf("invalid format %q, expected text, json or csv", c.config.Format)
	}
	return nil
}

func (c *PlanCommand) renderNeeds(reports *planning.ReportService, doc *entities.Document, day entities.Day) error {
	needs := reports.Needs(doc, day, requirements.Filter(c.config.Filter))

	var rows []output.NeedRow
	for _, material := range doc.Materials {
		kg, ok := needs[material.ID]
		if !ok {
			continue
		}
		rows = append(rows, output.NeedRow{
			MaterialID:   string(material.ID),
			MaterialName: material.Name,
			NeededKg:     kg,
		})
	}
	return output.RenderNeeds(os.Stdout, c.config.Format, day.String(), rows)
}

func (c *PlanCommand) renderPlan(reports *planning.ReportService, doc *entities.Document, day entities.Day) error {
	var rows []output.PlanRow
	for _, row := range reports.DailyPlan(doc, day) {
		rows = append(rows, output.PlanRow{
			MaterialID:    string(row.Material.ID),
			MaterialName:  row.Material.Name,
			StockKg:       row.Material.StockKg(),
			NeededKg:      row.NeededKg.InexactFloat64(),
			NextDayKg:     row.NextDayKg.InexactFloat64(),
			PalletBalance: row.PalletBalance.InexactFloat64(),
		})
	}
	return output.RenderPlan(os.Stdout, c.config.Format, day.String(), rows)
}

func (c *PlanCommand) renderShortages(reports *planning.ReportService, doc *entities.Document, day entities.Day) error {
	var rows []output.ShortageRow
	for _, s := range reports.Shortages(doc, day) {
		rows = append(rows, output.ShortageRow{
			MaterialID:      string(s.Material.ID),
			MaterialName:    s.Material.Name,
			NeededKg:        s.NeededKg.InexactFloat64(),
			StockKg:         s.Material.StockKg(),
			MissingKg:       s.MissingKg.InexactFloat64(),
			MissingPalettes: s.MissingPalettes,
		})
	}
	return output.RenderShortages(os.Stdout, c.config.Format, day.String(), rows)
}

func (c *PlanCommand) renderKfc(reports *planning.ReportService, doc *entities.Document, day entities.Day) error {
	plan := reports.KfcProductionPlan(doc, day)

	var report output.KfcReport
	for _, p := range plan.Products {
		report.Products = append(report.Products, output.KfcProductRow{
			MaterialID:    string(p.Material.ID),
			MaterialName:  p.Material.Name,
			TodayBoxes:    p.TodayBoxes,
			TomorrowBoxes: p.TomorrowBoxes,
		})
	}
	for _, b := range plan.BaseNeeds {
		report.Bases = append(report.Bases, output.KfcBaseRow{
			MaterialID:     string(b.Material.ID),
			MaterialName:   b.Material.Name,
			NeededKg:       b.NeededKg.InexactFloat64(),
			NeededPalettes: b.NeededPalettes,
			NextDayKg:      b.NextDayKg.InexactFloat64(),
		})
	}
	return output.RenderKfc(os.Stdout, c.config.Format, day.String(), report)
}

func (c *PlanCommand) showHelp() {
	fmt.Println("planner - daily material requirements planning")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  planner [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -config string   Path to a planner.yaml configuration file")
	fmt.Println("  -data string     Directory holding the planning document")
	fmt.Println("  -date string     Plan date (YYYY-MM-DD, default today)")
	fmt.Println("  -filter string   Customer filter: kfc or non-kfc (default all)")
	fmt.Println("  -report string   Report: needs, plan, shortages, kfc (default plan)")
	fmt.Println("  -format string   Output format: text, json, csv (default text)")
	fmt.Println("  -verbose         Enable verbose logging")
	fmt.Println("  -help            Show this help message")
}
