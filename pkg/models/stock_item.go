package models

import (
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is a display rule; the backend stores no such state.
const LowStockThreshold = 10

type StockItem struct {
	ID           string               `json:"id"`
	ItemName     string               `json:"itemName"`
	Quantity     int                  `json:"quantity"`
	UnitPrice    decimal.Decimal      `json:"unitPrice"`
	CostPrice    decimal.Decimal      `json:"costPrice"`
	SellingPrice decimal.Decimal      `json:"sellingPrice"`
	Category     string               `json:"category,omitempty"`
	Brand        string               `json:"brand,omitempty"`
	Status       metadata.StockStatus `json:"status,omitempty"`
	Supplier     string               `json:"supplier,omitempty"`
	Image        string               `json:"image,omitempty"`
	Warranty     string               `json:"warranty,omitempty"`
	Rating       *float64             `json:"rating,omitempty"`
}

func (s StockItem) IsLowStock() bool {
	return s.Quantity < LowStockThreshold
}

// Value is quantity * unitPrice.
func (s StockItem) Value() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

type StockMovement struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	ItemName  string    `json:"itemName,omitempty"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
}

func (s StockItem) AuditResource() (string, string) {
	return "stock", s.ID
}
