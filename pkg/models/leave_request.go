package models

import "github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

type LeaveRequest struct {
	ID         string               `json:"id"`
	EmployeeID string               `json:"employeeId"`
	LeaveType  string               `json:"leaveType,omitempty"`
	StartDate  Timestamp            `json:"startDate"`
	EndDate    Timestamp            `json:"endDate"`
	Reason     string               `json:"reason,omitempty"`
	Status     metadata.LeaveStatus `json:"status"`
	ApprovedBy string               `json:"approvedBy,omitempty"`
	ApprovedAt Timestamp            `json:"approvedAt,omitempty"`
	Comments   string               `json:"comments,omitempty"`
}

type LeaveApplication struct {
	EmployeeID string    `json:"employeeId"`
	LeaveType  string    `json:"leaveType"`
	StartDate  Timestamp `json:"startDate"`
	EndDate    Timestamp `json:"endDate"`
	Reason     string    `json:"reason,omitempty"`
}

// LeaveDecision is the body of approve and reject.
type LeaveDecision struct {
	ApprovedBy string `json:"approvedBy,omitempty"`
	Comments   string `json:"comments,omitempty"`
}
