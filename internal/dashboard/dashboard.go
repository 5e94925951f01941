package dashboard

import (
	"context"
	"sort"
	"sync"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/api"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type InventorySource interface {
	GetAllStockProducts(ctx context.Context) ([]models.StockItem, error)
	GetIssuances(ctx context.Context) ([]models.StockIssuance, error)
	GetMovements(ctx context.Context) ([]models.StockMovement, error)
}

type OperatorSource interface {
	GetAllOperators(ctx context.Context) ([]models.User, error)
}

type LeaveSource interface {
	GetRequests(ctx context.Context) ([]models.LeaveRequest, error)
}

type TaskSource interface {
	GetAll(ctx context.Context) ([]models.Task, error)
}

// Service assembles the read-only dashboard views. Every read that fails
// is logged and replaced by an empty list so the rest still renders.
type Service struct {
	Inventory InventorySource
	Operators OperatorSource
	Leave     LeaveSource
	Tasks     TaskSource
	Logger    *zap.Logger
}

func NewService(client *api.Client, log *zap.Logger) *Service {
	return &Service{
		Inventory: client.Inventory(),
		Operators: client.Operators(),
		Leave:     client.Leave(),
		Tasks:     client.Tasks(),
		Logger:    log,
	}
}

type failures struct {
	mu      sync.Mutex
	sources []string
}

func (f *failures) add(source string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources = append(f.sources, source)
}

func (f *failures) list() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	sort.Strings(f.sources)
	return f.sources
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// fetch runs load on g and stores its result in dst, or an empty slice
// when load fails. It never fails the group.
func fetch[T any](ctx context.Context, s *Service, g *errgroup.Group, failed *failures, source string, dst *[]T, load func(context.Context) ([]T, error)) {
	g.Go(func() error {
		items, err := load(ctx)
		if err != nil {
			kind, _ := api.KindOf(err)
			s.logger().Warn("dashboard source unavailable",
				zap.String("source", source),
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			failed.add(source)
			*dst = []T{}
			return nil
		}
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	})
}
