package dashboard

import (
	"context"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"

	"golang.org/x/sync/errgroup"
)

type LeaveSummary struct {
	Requests []models.LeaveRequest        `json:"requests"`
	ByStatus map[metadata.LeaveStatus]int `json:"byStatus"`
	Pending  []models.LeaveRequest        `json:"pending"`
	Failed   []string                     `json:"failed,omitempty"`
}

func (s *Service) LeaveSummary(ctx context.Context) LeaveSummary {
	var (
		out    LeaveSummary
		g      errgroup.Group
		failed failures
	)
	fetch(ctx, s, &g, &failed, "leave", &out.Requests, s.Leave.GetRequests)
	_ = g.Wait()
	out.Failed = failed.list()

	out.ByStatus = make(map[metadata.LeaveStatus]int)
	out.Pending = []models.LeaveRequest{}
	for _, req := range out.Requests {
		out.ByStatus[req.Status]++
		if req.Status == metadata.LeavePending {
			out.Pending = append(out.Pending, req)
		}
	}
	return out
}

type TaskBoard struct {
	Tasks      []models.Task                 `json:"tasks"`
	ByStatus   map[metadata.TaskStatus]int   `json:"byStatus"`
	ByPriority map[metadata.TaskPriority]int `json:"byPriority"`
	Open       int                           `json:"open"`
	Failed     []string                      `json:"failed,omitempty"`
}

// TaskBoard groups tasks by status with both status spellings folded
// together.
func (s *Service) TaskBoard(ctx context.Context) TaskBoard {
	var (
		out    TaskBoard
		g      errgroup.Group
		failed failures
	)
	fetch(ctx, s, &g, &failed, "tasks", &out.Tasks, s.Tasks.GetAll)
	_ = g.Wait()
	out.Failed = failed.list()

	out.ByStatus = make(map[metadata.TaskStatus]int)
	out.ByPriority = make(map[metadata.TaskPriority]int)
	for _, task := range out.Tasks {
		status := task.Status.Canonical()
		out.ByStatus[status]++
		out.ByPriority[task.Priority]++
		if status == metadata.TaskPending || status == metadata.TaskInProgress {
			out.Open++
		}
	}
	return out
}
