package dashboard

import (
	"context"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type InventoryOverview struct {
	Stock     []models.StockItem     `json:"stock"`
	Issuances []models.StockIssuance `json:"issuances"`
	Movements []models.StockMovement `json:"movements"`
	Operators []models.User          `json:"operators"`

	TotalItems        int                             `json:"totalItems"`
	TotalQuantity     int                             `json:"totalQuantity"`
	StockValue        decimal.Decimal                 `json:"stockValue"`
	LowStock          []models.StockItem              `json:"lowStock"`
	IssuedValue       decimal.Decimal                 `json:"issuedValue"`
	IssuancesByStatus map[metadata.IssuanceStatus]int `json:"issuancesByStatus"`
	OperatorCount     int                             `json:"operatorCount"`

	// Failed names the sources that could not be loaded.
	Failed []string `json:"failed,omitempty"`
}

// InventoryOverview loads stock, issuances, movements and operators in
// parallel.
func (s *Service) InventoryOverview(ctx context.Context) InventoryOverview {
	var (
		out    InventoryOverview
		g      errgroup.Group
		failed failures
	)
	fetch(ctx, s, &g, &failed, "stock", &out.Stock, s.Inventory.GetAllStockProducts)
	fetch(ctx, s, &g, &failed, "issuances", &out.Issuances, s.Inventory.GetIssuances)
	fetch(ctx, s, &g, &failed, "movements", &out.Movements, s.Inventory.GetMovements)
	fetch(ctx, s, &g, &failed, "operators", &out.Operators, s.Operators.GetAllOperators)
	_ = g.Wait()

	out.Failed = failed.list()
	summarizeStock(&out)
	return out
}

func summarizeStock(out *InventoryOverview) {
	out.TotalItems = len(out.Stock)
	out.StockValue = decimal.Zero
	out.LowStock = []models.StockItem{}
	for _, item := range out.Stock {
		out.TotalQuantity += item.Quantity
		out.StockValue = out.StockValue.Add(item.Value())
		if item.IsLowStock() {
			out.LowStock = append(out.LowStock, item)
		}
	}

	out.IssuedValue = decimal.Zero
	out.IssuancesByStatus = make(map[metadata.IssuanceStatus]int)
	for _, issuance := range out.Issuances {
		out.IssuancesByStatus[issuance.Status]++
		if issuance.Status != metadata.IssuanceCancelled {
			out.IssuedValue = out.IssuedValue.Add(issuance.Total())
		}
	}

	out.OperatorCount = len(out.Operators)
}
