package models

import "github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

// Complaint is a customer support ticket.
type Complaint struct {
	ID           string                   `json:"id"`
	CustomerID   string                   `json:"customerId"`
	OperatorID   string                   `json:"operatorId,omitempty"`
	TechnicianID string                   `json:"technicianId,omitempty"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description,omitempty"`
	Status       metadata.ComplaintStatus `json:"status"`
	CreatedAt    Timestamp                `json:"createdAt,omitempty"`
}

type ComplaintAssignment struct {
	TechnicianID string `json:"technicianId"`
}

type ComplaintStatusUpdate struct {
	Status metadata.ComplaintStatus `json:"status"`
}
