package models

import (
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

	"github.com/shopspring/decimal"
)

// StockIssuance is a batch transfer of stock to an operator or technician.
type StockIssuance struct {
	ID           string                  `json:"id"`
	OperatorID   string                  `json:"operatorId,omitempty"`
	TechnicianID string                  `json:"technicianId,omitempty"`
	Status       metadata.IssuanceStatus `json:"status"`
	Items        []IssuanceLine          `json:"items"`
	IssuedBy     string                  `json:"issuedBy,omitempty"`
	Notes        string                  `json:"notes,omitempty"`
	CreatedAt    Timestamp               `json:"createdAt,omitempty"`
}

// IssuanceLine snapshots quantity and unit price at issue time.
type IssuanceLine struct {
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func (i StockIssuance) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range i.Items {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

type IssueStockRequest struct {
	OperatorID   string      `json:"operatorId,omitempty"`
	TechnicianID string      `json:"technicianId,omitempty"`
	Items        []IssueLine `json:"items"`
	Notes        string      `json:"notes,omitempty"`
}

type IssueLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type IssuanceStatusUpdate struct {
	Status metadata.IssuanceStatus `json:"status"`
}

func (i StockIssuance) AuditResource() (string, string) {
	return "issuance", i.ID
}
