package main

import (
	"fmt"

	"github.com/dzcontrol/planner/pkg/application/services/planning"
	"github.com/dzcontrol/planner/pkg/domain/entities"
	"github.com/dzcontrol/planner/pkg/domain/services/requirements"
	"github.com/dzcontrol/planner/pkg/infrastructure/repositories/memory"
)

func main() {
	day := entities.Today()

	repo := memory.NewDocumentRepository(entities.DefaultDocument())
	docs := planning.NewDocumentService(repo)
	reports := planning.NewReportService()

	// Take some orders: cutlets and breasts for a retail customer.
	if err := docs.AddOrderItems("c1", day, entities.OrderTypeStandard, map[entities.MaterialID]int{
		"s01": 12, // ŘÍZKY
		"s03": 4,  // PRSA
	}); err != nil {
		panic(err)
	}

	// KFC fillet decomposes into breasts with a 15% trim loss.
	if err := docs.SetKfcComposition("s17", "s03", 15); err != nil {
		panic(err)
	}
	if err := docs.AddOrderItems("c7", day, entities.OrderTypeStandard, map[entities.MaterialID]int{
		"s17": 6, // KFC FILLET
	}); err != nil {
		panic(err)
	}

	doc, err := repo.Snapshot()
	if err != nil {
		panic(err)
	}

	needs := reports.Needs(doc, day, requirements.FilterAll)
	fmt.Printf("Material needs for %s:\n", day)
	for _, material := range doc.Materials {
		if kg := needs[material.ID]; kg > 0 {
			fmt.Printf("  %-6s %-14s %8.1f kg\n", material.ID, material.Name, kg)
		}
	}

	fmt.Println("\nShortages:")
	for _, s := range reports.Shortages(doc, day) {
		fmt.Printf("  %-14s missing %s kg (%d pallets)\n",
			s.Material.Name, s.MissingKg.StringFixed(1), s.MissingPalettes)
	}
}
