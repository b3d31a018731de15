// Package output renders planner reports as text, JSON or CSV.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Formats lists the supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// NeedRow is one rendered line of the raw requirements report.
type NeedRow struct {
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName"`
	NeededKg     float64 `json:"neededKg"`
}

// PlanRow is one rendered line of the daily plan.
type PlanRow struct {
	MaterialID    string  `json:"materialId"`
	MaterialName  string  `json:"materialName"`
	StockKg       float64 `json:"stockKg"`
	NeededKg      float64 `json:"neededKg"`
	NextDayKg     float64 `json:"nextDayKg"`
	PalletBalance float64 `json:"palletBalance"`
}

// ShortageRow is one rendered line of the shortage report.
type ShortageRow struct {
	MaterialID      string  `json:"materialId"`
	MaterialName    string  `json:"materialName"`
	NeededKg        float64 `json:"neededKg"`
	StockKg         float64 `json:"stockKg"`
	MissingKg       float64 `json:"missingKg"`
	MissingPalettes int     `json:"missingPalettes"`
}

// KfcProductRow is one rendered KFC product line.
type KfcProductRow struct {
	MaterialID    string `json:"materialId"`
	MaterialName  string `json:"materialName"`
	TodayBoxes    int    `json:"todayBoxes"`
	TomorrowBoxes int    `json:"tomorrowBoxes"`
}

// KfcBaseRow is one rendered KFC base-material line.
type KfcBaseRow struct {
	MaterialID     string  `json:"materialId"`
	MaterialName   string  `json:"materialName"`
	NeededKg       float64 `json:"neededKg"`
	NeededPalettes int     `json:"neededPalettes"`
	NextDayKg      float64 `json:"nextDayKg"`
}

// KfcReport bundles the two halves of the KFC production view.
type KfcReport struct {
	Products []KfcProductRow `json:"products"`
	Bases    []KfcBaseRow    `json:"baseNeeds"`
}

// RenderNeeds writes the raw requirements report.
func RenderNeeds(w io.Writer, format string, day string, rows []NeedRow) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, rows)
	case FormatCSV:
		records := [][]string{{"material_id", "material_name", "needed_kg"}}
		for _, r := range rows {
			records = append(records, []string{r.MaterialID, r.MaterialName, formatKg(r.NeededKg)})
		}
		return renderCSV(w, records)
	case FormatText:
		fmt.Fprintf(w, "Material needs for %s\n\n", day)
		fmt.Fprintf(w, "%-6s %-22s %12s\n", "ID", "Material", "Needed (kg)")
		fmt.Fprintf(w, "%-6s %-22s %12s\n", "------", "----------------------", "------------")
		for _, r := range rows {
			fmt.Fprintf(w, "%-6s %-22s %12s\n", r.MaterialID, r.MaterialName, formatKg(r.NeededKg))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderPlan writes the daily plan report.
func RenderPlan(w io.Writer, format string, day string, rows []PlanRow) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, rows)
	case FormatCSV:
		records := [][]string{{"material_id", "material_name", "stock_kg", "needed_kg", "next_day_kg", "pallet_balance"}}
		for _, r := range rows {
			records = append(records, []string{
				r.MaterialID, r.MaterialName,
				formatKg(r.StockKg), formatKg(r.NeededKg), formatKg(r.NextDayKg),
				formatKg(r.PalletBalance),
			})
		}
		return renderCSV(w, records)
	case FormatText:
		fmt.Fprintf(w, "Daily plan for %s\n\n", day)
		fmt.Fprintf(w, "%-6s %-22s %12s %12s %12s %10s\n",
			"ID", "Material", "Stock (kg)", "Needed (kg)", "Next (kg)", "Balance")
		fmt.Fprintf(w, "%-6s %-22s %12s %12s %12s %10s\n",
			"------", "----------------------", "------------", "------------", "------------", "----------")
		for _, r := range rows {
			fmt.Fprintf(w, "%-6s %-22s %12s %12s %12s %10s\n",
				r.MaterialID, r.MaterialName,
				formatKg(r.StockKg), formatKg(r.NeededKg), formatKg(r.NextDayKg),
				formatKg(r.PalletBalance))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderShortages writes the shortage report.
func RenderShortages(w io.Writer, format string, day string, rows []ShortageRow) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, rows)
	case FormatCSV:
		records := [][]string{{"material_id", "material_name", "needed_kg", "stock_kg", "missing_kg", "missing_palettes"}}
		for _, r := range rows {
			records = append(records, []string{
				r.MaterialID, r.MaterialName,
				formatKg(r.NeededKg), formatKg(r.StockKg), formatKg(r.MissingKg),
				strconv.Itoa(r.MissingPalettes),
			})
		}
		return renderCSV(w, records)
	case FormatText:
		if len(rows) == 0 {
			fmt.Fprintf(w, "No shortages for %s\n", day)
			return nil
		}
		fmt.Fprintf(w, "Shortages for %s\n\n", day)
		fmt.Fprintf(w, "%-6s %-22s %12s %12s %12s %9s\n",
			"ID", "Material", "Needed (kg)", "Stock (kg)", "Missing (kg)", "Pallets")
		fmt.Fprintf(w, "%-6s %-22s %12s %12s %12s %9s\n",
			"------", "----------------------", "------------", "------------", "------------", "---------")
		for _, r := range rows {
			fmt.Fprintf(w, "%-6s %-22s %12s %12s %12s %9d\n",
				r.MaterialID, r.MaterialName,
				formatKg(r.NeededKg), formatKg(r.StockKg), formatKg(r.MissingKg),
				r.MissingPalettes)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderKfc writes the KFC production report.
func RenderKfc(w io.Writer, format string, day string, report KfcReport) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, report)
	case FormatCSV:
		records := [][]string{{"section", "material_id", "material_name", "today", "tomorrow"}}
		for _, r := range report.Products {
			records = append(records, []string{
				"product", r.MaterialID, r.MaterialName,
				strconv.Itoa(r.TodayBoxes), strconv.Itoa(r.TomorrowBoxes),
			})
		}
		for _, r := range report.Bases {
			records = append(records, []string{
				"base", r.MaterialID, r.MaterialName,
				formatKg(r.NeededKg), formatKg(r.NextDayKg),
			})
		}
		return renderCSV(w, records)
	case FormatText:
		fmt.Fprintf(w, "KFC production for %s\n\n", day)
		fmt.Fprintf(w, "Ordered products:\n")
		fmt.Fprintf(w, "%-6s %-22s %10s %10s\n", "ID", "Product", "Today", "Tomorrow")
		for _, r := range report.Products {
			fmt.Fprintf(w, "%-6s %-22s %10d %10d\n", r.MaterialID, r.MaterialName, r.TodayBoxes, r.TomorrowBoxes)
		}
		fmt.Fprintf(w, "\nBase materials:\n")
		fmt.Fprintf(w, "%-6s %-22s %12s %9s %12s\n", "ID", "Material", "Needed (kg)", "Pallets", "Next (kg)")
		for _, r := range report.Bases {
			fmt.Fprintf(w, "%-6s %-22s %12s %9d %12s\n",
				r.MaterialID, r.MaterialName, formatKg(r.NeededKg), r.NeededPalettes, formatKg(r.NextDayKg))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func formatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 2, 64)
}
