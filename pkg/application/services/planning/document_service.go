package planning

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzcontrol/planner/pkg/domain/entities"
	"github.com/dzcontrol/planner/pkg/domain/repositories"
)

// DocumentService edits the planning document. Every operation takes a
// fresh snapshot, mutates the copy and swaps it back in whole, so readers
// never see a partially applied edit.
type DocumentService struct {
	repo  repositories.DocumentRepository
	newID func() string
}

// NewDocumentService creates a document service backed by the repository.
func NewDocumentService(repo repositories.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo, newID: uuid.NewString}
}

// edit runs one copy-on-write mutation.
func (s *DocumentService) edit(mutate func(*entities.Document) error) error {
	doc, err := s.repo.Snapshot()
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.repo.Replace(doc)
}

// AddOrderItems adds box requests for a customer, day and order type.
// Items merge into the customer's existing order of the same day and type
// when one exists; zero and negative counts are dropped.
func (s *DocumentService) AddOrderItems(customerID entities.CustomerID, day entities.Day, orderType entities.OrderType, boxes map[entities.MaterialID]int) error {
	orderType = orderType.Normalize()
	if !orderType.Valid() {
		return fmt.Errorf("unknown order type %q", orderType)
	}

	var items []entities.OrderItem
	materialIDs := make([]entities.MaterialID, 0, len(boxes))
	for materialID := range boxes {
		materialIDs = append(materialIDs, materialID)
	}
	sort.Slice(materialIDs, func(i, j int) bool { return materialIDs[i] < materialIDs[j] })
	for _, materialID := range materialIDs {
		if boxes[materialID] <= 0 {
			continue
		}
		items = append(items, entities.OrderItem{
			ID:         s.newID(),
			MaterialID: materialID,
			BoxCount:   boxes[materialID],
		})
	}
	if len(items) == 0 {
		return fmt.Errorf("no order items given")
	}

	return s.edit(func(doc *entities.Document) error {
		for i := range doc.Orders {
			order := &doc.Orders[i]
			if order.CustomerID == customerID && order.Date == day && order.Type.Normalize() == orderType {
				order.Items = append(order.Items, items...)
				return nil
			}
		}
		doc.Orders = append(doc.Orders, entities.Order{
			ID:         s.newID(),
			Date:       day,
			CustomerID: customerID,
			Type:       orderType,
			Items:      items,
		})
		return nil
	})
}

// RemoveOrder deletes an order by id.
func (s *DocumentService) RemoveOrder(orderID string) error {
	return s.edit(func(doc *entities.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == orderID {
				doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("order %s not found", orderID)
	})
}

// SetRatioOverride replaces the mix ratio of one order item. A nil
// component list clears the override, falling back to the global mix
// definition.
func (s *DocumentService) SetRatioOverride(orderID, itemID string, components []entities.MixComponent) error {
	return s.edit(func(doc *entities.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID != orderID {
				continue
			}
			for j := range doc.Orders[i].Items {
				if doc.Orders[i].Items[j].ID == itemID {
					doc.Orders[i].Items[j].RatioOverride = components
					return nil
				}
			}
		}
		return fmt.Errorf("order item %s/%s not found", orderID, itemID)
	})
}

// SetMixDefinition stores the global recipe of a mix material. Components
// must pass edit-time validation (percentages summing to 100).
func (s *DocumentService) SetMixDefinition(mixID entities.MaterialID, components []entities.MixComponent) error {
	def, err := entities.NewMixDefinition(components)
	if err != nil {
		return fmt.Errorf("invalid mix definition: %w", err)
	}
	return s.edit(func(doc *entities.Document) error {
		if doc.MixDefinitions == nil {
			doc.MixDefinitions = map[entities.MaterialID]entities.MixDefinition{}
		}
		doc.MixDefinitions[mixID] = *def
		return nil
	})
}

// SetKfcComposition stores the base material and loss of a KFC product.
func (s *DocumentService) SetKfcComposition(materialID entities.MaterialID, baseID entities.MaterialID, lossPercent float64) error {
	comp, err := entities.NewKfcComposition(baseID, lossPercent)
	if err != nil {
		return fmt.Errorf("invalid KFC composition: %w", err)
	}
	return s.edit(func(doc *entities.Document) error {
		if doc.KfcCompositions == nil {
			doc.KfcCompositions = map[entities.MaterialID]entities.KfcComposition{}
		}
		doc.KfcCompositions[materialID] = *comp
		return nil
	})
}

// SaveProduct inserts or updates a product; a missing id is assigned.
func (s *DocumentService) SaveProduct(product entities.Product) error {
	if product.ID == "" {
		product.ID = s.newID()
	}
	return s.edit(func(doc *entities.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == product.ID {
				doc.Products[i] = product
				return nil
			}
		}
		doc.Products = append(doc.Products, product)
		return nil
	})
}

// AddCustomer creates a customer and back-fills default box weights for
// every material.
func (s *DocumentService) AddCustomer(name string) (entities.CustomerID, error) {
	customer, err := entities.NewCustomer(entities.CustomerID(s.newID()), name)
	if err != nil {
		return "", err
	}
	err = s.edit(func(doc *entities.Document) error {
		doc.Customers = append(doc.Customers, *customer)
		if doc.BoxWeights == nil {
			doc.BoxWeights = entities.BoxWeightTable{}
		}
		for _, material := range doc.Materials {
			doc.BoxWeights.EnsureEntry(customer.ID, material.ID)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

// RenameCustomer changes a customer's display name.
func (s *DocumentService) RenameCustomer(customerID entities.CustomerID, name string) error {
	if name == "" {
		return fmt.Errorf("customer name is required")
	}
	return s.edit(func(doc *entities.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == customerID {
				doc.Customers[i].Name = name
				return nil
			}
		}
		return fmt.Errorf("customer %s not found", customerID)
	})
}

// DeleteCustomer removes a customer and cascades its box-weight entry. The
// delete is blocked while orders, products or planned actions still
// reference the customer.
func (s *DocumentService) DeleteCustomer(customerID entities.CustomerID) error {
	return s.edit(func(doc *entities.Document) error {
		for _, o := range doc.Orders {
			if o.CustomerID == customerID {
				return fmt.Errorf("customer %s still has orders", customerID)
			}
		}
		for _, p := range doc.Products {
			if p.CustomerID == customerID {
				return fmt.Errorf("customer %s still has products", customerID)
			}
		}
		for _, a := range doc.PlannedActions {
			if a.CustomerID == customerID {
				return fmt.Errorf("customer %s still has planned actions", customerID)
			}
		}
		for i := range doc.Customers {
			if doc.Customers[i].ID == customerID {
				doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
				delete(doc.BoxWeights, customerID)
				return nil
			}
		}
		return fmt.Errorf("customer %s not found", customerID)
	})
}

// PlanAction inserts or updates a planned action. New actions get an id;
// the start date is required either way.
func (s *DocumentService) PlanAction(action entities.PlannedAction) (string, error) {
	if action.StartDate == "" {
		return "", fmt.Errorf("planned action start date is required")
	}
	if action.DailyCounts == nil {
		action.DailyCounts = map[entities.Day]int{}
	}
	if action.ID == "" {
		action.ID = s.newID()
	}
	err := s.edit(func(doc *entities.Document) error {
		for i := range doc.PlannedActions {
			if doc.PlannedActions[i].ID == action.ID {
				doc.PlannedActions[i] = action
				return nil
			}
		}
		doc.PlannedActions = append(doc.PlannedActions, action)
		return nil
	})
	if err != nil {
		return "", err
	}
	return action.ID, nil
}

// DeleteAction removes a planned action by id.
func (s *DocumentService) DeleteAction(actionID string) error {
	return s.edit(func(doc *entities.Document) error {
		for i := range doc.PlannedActions {
			if doc.PlannedActions[i].ID == actionID {
				doc.PlannedActions = append(doc.PlannedActions[:i], doc.PlannedActions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("planned action %s not found", actionID)
	})
}

// AdjustStock sets a material's pallet and loose-box stock, clamped at zero.
func (s *DocumentService) AdjustStock(materialID entities.MaterialID, palettes, boxes int) error {
	if palettes < 0 {
		palettes = 0
	}
	if boxes < 0 {
		boxes = 0
	}
	return s.edit(func(doc *entities.Document) error {
		material := doc.Material(materialID)
		if material == nil {
			return fmt.Errorf("material %s not found", materialID)
		}
		material.StockPalettes = palettes
		material.StockBoxes = boxes
		return nil
	})
}

// CompleteSkewerOrders marks a customer's skewer orders of the day done and
// deducts the produced weight from the cutlet stock, converting the
// remainder back to whole pallets plus loose boxes.
func (s *DocumentService) CompleteSkewerOrders(customerID entities.CustomerID, day entities.Day) (decimal.Decimal, error) {
	deducted := decimal.Zero
	err := s.edit(func(doc *entities.Document) error {
		cutlets := doc.Material(entities.SkeweredCutletMaterialID)
		if cutlets == nil {
			return fmt.Errorf("cutlet material %s not found", entities.SkeweredCutletMaterialID)
		}

		skewerIDs := skewerMaterialIDs(doc)
		totalKg := decimal.Zero
		for _, o := range doc.OrdersOn(day) {
			if o.CustomerID != customerID {
				continue
			}
			for _, item := range o.Items {
				if !skewerIDs[item.MaterialID] {
					continue
				}
				grams := doc.BoxWeights.Weight(o.CustomerID, entities.OrderTypeStandard, item.MaterialID)
				totalKg = totalKg.Add(boxesToKg(item.BoxCount, grams))
			}
		}

		if totalKg.Sign() > 0 && cutlets.PaletteWeight > 0 {
			paletteKg := decimal.NewFromFloat(cutlets.PaletteWeight)
			boxKg := paletteKg.Div(decimal.NewFromInt(entities.BoxesPerPalette))
			stockKg := decimal.NewFromFloat(cutlets.StockKg())
			remaining := stockKg.Sub(totalKg)

			if remaining.Sign() > 0 {
				pallets := remaining.Div(paletteKg).Floor()
				rest := remaining.Sub(pallets.Mul(paletteKg))
				cutlets.StockPalettes = int(pallets.IntPart())
				cutlets.StockBoxes = int(rest.Div(boxKg).Round(0).IntPart())
			} else {
				cutlets.StockPalettes = 0
				cutlets.StockBoxes = 0
			}
			deducted = totalKg
		}

		if doc.SkewerOrderStatus == nil {
			doc.SkewerOrderStatus = map[entities.Day]map[entities.CustomerID]bool{}
		}
		if doc.SkewerOrderStatus[day] == nil {
			doc.SkewerOrderStatus[day] = map[entities.CustomerID]bool{}
		}
		doc.SkewerOrderStatus[day][customerID] = true
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return deducted, nil
}

// UncompleteSkewerOrders clears the done flag without restoring stock; the
// produced weight stays consumed.
func (s *DocumentService) UncompleteSkewerOrders(customerID entities.CustomerID, day entities.Day) error {
	return s.edit(func(doc *entities.Document) error {
		if doc.SkewerOrderStatus[day] != nil {
			doc.SkewerOrderStatus[day][customerID] = false
		}
		return nil
	})
}

// RemoveSkewerOrders deletes a customer's skewer lines for the day,
// dropping orders that end up empty.
func (s *DocumentService) RemoveSkewerOrders(customerID entities.CustomerID, day entities.Day) error {
	return s.edit(func(doc *entities.Document) error {
		skewerIDs := skewerMaterialIDs(doc)
		var orders []entities.Order
		for _, o := range doc.Orders {
			if o.CustomerID == customerID && o.Date == day {
				var items []entities.OrderItem
				for _, item := range o.Items {
					if !skewerIDs[item.MaterialID] {
						items = append(items, item)
					}
				}
				o.Items = items
			}
			if len(o.Items) > 0 {
				orders = append(orders, o)
			}
		}
		doc.Orders = orders
		return nil
	})
}

// ToggleExtraProductionDone flips the done flag of an extra-production
// target for the day.
func (s *DocumentService) ToggleExtraProductionDone(productID string, day entities.Day) error {
	return s.edit(func(doc *entities.Document) error {
		if doc.ExtraProductionStatus == nil {
			doc.ExtraProductionStatus = map[entities.Day]map[string]bool{}
		}
		if doc.ExtraProductionStatus[day] == nil {
			doc.ExtraProductionStatus[day] = map[string]bool{}
		}
		doc.ExtraProductionStatus[day][productID] = !doc.ExtraProductionStatus[day][productID]
		return nil
	})
}
