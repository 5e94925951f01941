package models

import "github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

// Order links a marketplace product, its vendor and the ordering operator.
type Order struct {
	ID         string               `json:"id"`
	ProductID  string               `json:"productId"`
	VendorID   string               `json:"vendorId"`
	OperatorID string               `json:"operatorId"`
	Quantity   int                  `json:"quantity"`
	Status     metadata.OrderStatus `json:"status"`
	CreatedAt  Timestamp            `json:"createdAt,omitempty"`
}

type OrderStatusUpdate struct {
	Status metadata.OrderStatus `json:"status"`
}
