package api

import (
	"context"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
)

type LeaveAPI struct{ Facade }

func (c *Client) Leave() LeaveAPI { return LeaveAPI{c.Facade("leave")} }

func (l LeaveAPI) GetRequests(ctx context.Context) ([]models.LeaveRequest, error) {
	return call[[]models.LeaveRequest](ctx, l.Facade, "getRequests", Args{})
}

func (l LeaveAPI) Apply(ctx context.Context, req models.LeaveApplication) (models.LeaveRequest, error) {
	return call[models.LeaveRequest](ctx, l.Facade, "apply", Args{Body: req})
}

func (l LeaveAPI) Approve(ctx context.Context, id string, decision models.LeaveDecision) error {
	args := ID(id)
	args.Body = decision
	return exec(ctx, l.Facade, "approve", args)
}

func (l LeaveAPI) Reject(ctx context.Context, id string, decision models.LeaveDecision) error {
	args := ID(id)
	args.Body = decision
	return exec(ctx, l.Facade, "reject", args)
}

type TaskAPI struct{ Facade }

func (c *Client) Tasks() TaskAPI { return TaskAPI{c.Facade("task")} }

func (t TaskAPI) GetAll(ctx context.Context) ([]models.Task, error) {
	return call[[]models.Task](ctx, t.Facade, "getAll", Args{})
}

func (t TaskAPI) Create(ctx context.Context, task models.Task) (models.Task, error) {
	return call[models.Task](ctx, t.Facade, "create", Args{Body: task})
}

func (t TaskAPI) UpdateStatus(ctx context.Context, id string, status metadata.TaskStatus) error {
	args := ID(id)
	args.Body = models.TaskStatusUpdate{Status: status}
	return exec(ctx, t.Facade, "updateStatus", args)
}

func (t TaskAPI) Assign(ctx context.Context, id, assignee string) error {
	args := ID(id)
	args.Body = models.TaskAssignment{AssignedTo: assignee}
	return exec(ctx, t.Facade, "assign", args)
}

type OrderAPI struct{ Facade }

func (c *Client) Orders() OrderAPI { return OrderAPI{c.Facade("order")} }

func (o OrderAPI) GetAll(ctx context.Context) ([]models.Order, error) {
	return call[[]models.Order](ctx, o.Facade, "getAll", Args{})
}

func (o OrderAPI) Create(ctx context.Context, order models.Order) (models.Order, error) {
	return call[models.Order](ctx, o.Facade, "create", Args{Body: order})
}

func (o OrderAPI) UpdateStatus(ctx context.Context, id string, status metadata.OrderStatus) error {
	args := ID(id)
	args.Body = models.OrderStatusUpdate{Status: status}
	return exec(ctx, o.Facade, "updateStatus", args)
}

type ComplaintAPI struct{ Facade }

func (c *Client) Complaints() ComplaintAPI { return ComplaintAPI{c.Facade("complaint")} }

func (cp ComplaintAPI) GetAll(ctx context.Context) ([]models.Complaint, error) {
	return call[[]models.Complaint](ctx, cp.Facade, "getAll", Args{})
}

func (cp ComplaintAPI) Assign(ctx context.Context, id, technicianID string) error {
	args := ID(id)
	args.Body = models.ComplaintAssignment{TechnicianID: technicianID}
	return exec(ctx, cp.Facade, "assign", args)
}

func (cp ComplaintAPI) UpdateStatus(ctx context.Context, id string, status metadata.ComplaintStatus) error {
	args := ID(id)
	args.Body = models.ComplaintStatusUpdate{Status: status}
	return exec(ctx, cp.Facade, "updateStatus", args)
}
