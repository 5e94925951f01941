package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/dashboard"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"

	"github.com/spf13/cobra"
)

type view func(ctx context.Context, svc *dashboard.Service, w io.Writer, asJSON bool) error

func newDashboardCommand(a *app) *cobra.Command {
	var (
		asJSON bool
		watch  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Read-only summaries assembled from several endpoints",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	cmd.PersistentFlags().DurationVar(&watch, "watch", 0, "Refresh on this interval until interrupted")

	add := func(use, short string, render view) {
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				client, err := a.apiClient()
				if err != nil {
					return err
				}
				svc := dashboard.NewService(client, a.logger)
				return repeat(cmd.Context(), watch, func(ctx context.Context) error {
					return render(ctx, svc, cmd.OutOrStdout(), asJSON)
				})
			},
		})
	}
	add("inventory", "Stock, issuances, movements and operators", renderInventory)
	add("leave", "Leave requests by status", renderLeave)
	add("tasks", "Tasks by status and priority", renderTasks)
	return cmd
}

// repeat runs fn once, or every interval until ctx is done when interval > 0.
func repeat(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil || interval <= 0 {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderFailures(w io.Writer, failed []string) {
	if len(failed) > 0 {
		fmt.Fprintf(w, "Unavailable: %s\n", strings.Join(failed, ", "))
	}
}

func renderInventory(ctx context.Context, svc *dashboard.Service, w io.Writer, asJSON bool) error {
	overview := svc.InventoryOverview(ctx)
	if asJSON {
		return writeJSON(w, overview)
	}

	fmt.Fprintf(w, "Items:          %d\n", overview.TotalItems)
	fmt.Fprintf(w, "Units in stock: %d\n", overview.TotalQuantity)
	fmt.Fprintf(w, "Stock value:    %s\n", overview.StockValue.StringFixed(2))
	fmt.Fprintf(w, "Issued value:   %s\n", overview.IssuedValue.StringFixed(2))
	fmt.Fprintf(w, "Operators:      %d\n", overview.OperatorCount)
	for _, status := range sortedKeys(overview.IssuancesByStatus) {
		fmt.Fprintf(w, "Issuances %-12s %d\n", status+":", overview.IssuancesByStatus[status])
	}
	if len(overview.LowStock) > 0 {
		fmt.Fprintf(w, "Low stock (< %d):\n", models.LowStockThreshold)
		for _, item := range overview.LowStock {
			fmt.Fprintf(w, "  %-30s %d\n", item.ItemName, item.Quantity)
		}
	}
	renderFailures(w, overview.Failed)
	return nil
}

func renderLeave(ctx context.Context, svc *dashboard.Service, w io.Writer, asJSON bool) error {
	summary := svc.LeaveSummary(ctx)
	if asJSON {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "Requests: %d\n", len(summary.Requests))
	for _, status := range sortedKeys(summary.ByStatus) {
		fmt.Fprintf(w, "  %-10s %d\n", status, summary.ByStatus[status])
	}
	for _, req := range summary.Pending {
		fmt.Fprintf(w, "Pending: %s %s %s..%s\n", req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate)
	}
	renderFailures(w, summary.Failed)
	return nil
}

func renderTasks(ctx context.Context, svc *dashboard.Service, w io.Writer, asJSON bool) error {
	board := svc.TaskBoard(ctx)
	if asJSON {
		return writeJSON(w, board)
	}

	fmt.Fprintf(w, "Tasks: %d (open %d)\n", len(board.Tasks), board.Open)
	for _, status := range sortedKeys(board.ByStatus) {
		fmt.Fprintf(w, "  %-12s %d\n", status, board.ByStatus[status])
	}
	for _, priority := range sortedKeys(board.ByPriority) {
		fmt.Fprintf(w, "  priority %-8s %d\n", priority, board.ByPriority[priority])
	}
	renderFailures(w, board.Failed)
	return nil
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
