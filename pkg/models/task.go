package models

import "github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

type Task struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Priority    metadata.TaskPriority `json:"priority"`
	Status      metadata.TaskStatus   `json:"status"`
	AssignedTo  string                `json:"assignedTo,omitempty"`
	CreatedBy   string                `json:"createdBy,omitempty"`
	DueDate     Timestamp             `json:"dueDate,omitempty"`
	CreatedAt   Timestamp             `json:"createdAt,omitempty"`
}

type TaskStatusUpdate struct {
	Status metadata.TaskStatus `json:"status"`
}

type TaskAssignment struct {
	AssignedTo string `json:"assignedTo"`
}
