package metadata

// Status literals are sent to the backend exactly as written here. The
// client never rejects an unknown literal; Known only backs CLI warnings.

type StockStatus string

const (
	StockAvailable    StockStatus = "Available"
	StockOutOfStock   StockStatus = "Out of Stock"
	StockDiscontinued StockStatus = "Discontinued"
)

func (s StockStatus) Known() bool {
	switch s {
	case StockAvailable, StockOutOfStock, StockDiscontinued:
		return true
	default:
		return false
	}
}

type IssuanceStatus string

const (
	IssuancePending   IssuanceStatus = "Pending"
	IssuanceDelivered IssuanceStatus = "Delivered"
	IssuanceCancelled IssuanceStatus = "Cancelled"
)

func (s IssuanceStatus) Known() bool {
	switch s {
	case IssuancePending, IssuanceDelivered, IssuanceCancelled:
		return true
	default:
		return false
	}
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Known() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) Known() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	default:
		return false
	}
}

type TaskStatus string

// Task pages send both spellings; the backend schema that decides between
// them is not available, so both sets are accepted.
const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskCancelled  TaskStatus = "Cancelled"

	TaskPendingLower    TaskStatus = "pending"
	TaskInProgressLower TaskStatus = "in-progress"
	TaskCompletedLower  TaskStatus = "completed"
	TaskCancelledLower  TaskStatus = "cancelled"
)

func (s TaskStatus) Known() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled,
		TaskPendingLower, TaskInProgressLower, TaskCompletedLower, TaskCancelledLower:
		return true
	default:
		return false
	}
}

// Canonical folds the lowercase spelling onto the capitalized one, for
// grouping only.
func (s TaskStatus) Canonical() TaskStatus {
	switch s {
	case TaskPendingLower:
		return TaskPending
	case TaskInProgressLower:
		return TaskInProgress
	case TaskCompletedLower:
		return TaskCompleted
	case TaskCancelledLower:
		return TaskCancelled
	default:
		return s
	}
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

func (p TaskPriority) Known() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintAssigned   ComplaintStatus = "assigned"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

func (s ComplaintStatus) Known() bool {
	switch s {
	case ComplaintOpen, ComplaintAssigned, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	default:
		return false
	}
}
