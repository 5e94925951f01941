package sandbox

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/roles"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidLogin      = errors.New("invalid email or password")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyIssue        = errors.New("issue has no lines")
)

type account struct {
	user         models.User
	passwordHash []byte
}

// Store is the in-memory state behind the sandbox routes.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]account
	stock     map[string]models.StockItem
	issuances []models.StockIssuance
	movements []models.StockMovement
	leave     []models.LeaveRequest
	tasks     []models.Task
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]account),
		stock:    make(map[string]models.StockItem),
		now:      time.Now,
	}
}

// AddUser registers a login; the password is stored as a bcrypt hash.
func (s *Store) AddUser(email, password string, role roles.Role, profile models.ProfileDetail) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		UserID:        uuid.NewString(),
		Email:         email,
		Role:          role,
		ProfileDetail: profile,
		CreatedAt:     models.Timestamp(s.now().UTC().Format(time.RFC3339)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = account{user: user, passwordHash: hash}
	return user, nil
}

func (s *Store) Authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidLogin
	}
	return acc.user, nil
}

func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.user.UserID == id {
			return acc.user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) UsersWithRole(role roles.Role) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []models.User{}
	for _, acc := range s.accounts {
		if acc.user.Role == role {
			users = append(users, acc.user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users
}

func (s *Store) ListStock() []models.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.StockItem, 0, len(s.stock))
	for _, item := range s.stock {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemName < items[j].ItemName })
	return items
}

func (s *Store) GetStock(id string) (models.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.stock[id]
	if !ok {
		return models.StockItem{}, ErrNotFound
	}
	return item, nil
}

func (s *Store) PutStock(item models.StockItem) models.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Status = stockStatus(item)
	s.stock[item.ID] = item
	return item
}

func (s *Store) DeleteStock(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stock[id]; !ok {
		return ErrNotFound
	}
	delete(s.stock, id)
	return nil
}

// Issue moves the requested quantities out of stock in one step; nothing
// changes when any line cannot be served.
func (s *Store) Issue(req models.IssueStockRequest, issuedBy string) (models.StockIssuance, error) {
	if len(req.Items) == 0 {
		return models.StockIssuance{}, ErrEmptyIssue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	requested := make(map[string]int)
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return models.StockIssuance{}, fmt.Errorf("%w: quantity for %s must be positive", ErrInsufficientStock, line.ItemID)
		}
		requested[line.ItemID] += line.Quantity
	}
	for id, qty := range requested {
		item, ok := s.stock[id]
		if !ok {
			return models.StockIssuance{}, fmt.Errorf("%w: item %s", ErrNotFound, id)
		}
		if item.Quantity < qty {
			return models.StockIssuance{}, fmt.Errorf("%w: %s has %d, requested %d", ErrInsufficientStock, item.ItemName, item.Quantity, qty)
		}
	}

	now := models.Timestamp(s.now().UTC().Format(time.RFC3339))
	issuance := models.StockIssuance{
		ID:           uuid.NewString(),
		OperatorID:   req.OperatorID,
		TechnicianID: req.TechnicianID,
		Status:       metadata.IssuancePending,
		IssuedBy:     issuedBy,
		Notes:        req.Notes,
		CreatedAt:    now,
	}
	for _, line := range req.Items {
		item := s.stock[line.ItemID]
		item.Quantity -= line.Quantity
		item.Status = stockStatus(item)
		s.stock[item.ID] = item

		issuance.Items = append(issuance.Items, models.IssuanceLine{
			ItemID:    item.ID,
			ItemName:  item.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: item.UnitPrice,
		})
		s.movements = append(s.movements, models.StockMovement{
			ID:        uuid.NewString(),
			ItemID:    item.ID,
			ItemName:  item.ItemName,
			Type:      "issue",
			Quantity:  -line.Quantity,
			Reference: issuance.ID,
			CreatedAt: now,
		})
	}
	s.issuances = append(s.issuances, issuance)
	return issuance, nil
}

func (s *Store) ListIssuances() []models.StockIssuance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StockIssuance{}, s.issuances...)
}

func (s *Store) SetIssuanceStatus(id string, status metadata.IssuanceStatus) (models.StockIssuance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.issuances {
		if s.issuances[i].ID == id {
			s.issuances[i].Status = status
			return s.issuances[i], nil
		}
	}
	return models.StockIssuance{}, ErrNotFound
}

func (s *Store) ListMovements() []models.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StockMovement{}, s.movements...)
}

func (s *Store) AddLeave(req models.LeaveRequest) models.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	s.leave = append(s.leave, req)
	return req
}

func (s *Store) ListLeave() []models.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LeaveRequest{}, s.leave...)
}

func (s *Store) DecideLeave(id string, status metadata.LeaveStatus, decision models.LeaveDecision) (models.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leave {
		if s.leave[i].ID == id {
			s.leave[i].Status = status
			s.leave[i].ApprovedBy = decision.ApprovedBy
			s.leave[i].ApprovedAt = models.Timestamp(s.now().UTC().Format(time.RFC3339))
			s.leave[i].Comments = decision.Comments
			return s.leave[i], nil
		}
	}
	return models.LeaveRequest{}, ErrNotFound
}

func (s *Store) AddTask(task models.Task) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	s.tasks = append(s.tasks, task)
	return task
}

func (s *Store) ListTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task{}, s.tasks...)
}

func stockStatus(item models.StockItem) metadata.StockStatus {
	if item.Status == metadata.StockDiscontinued {
		return item.Status
	}
	if item.Quantity <= 0 {
		return metadata.StockOutOfStock
	}
	return metadata.StockAvailable
}

// Seed fills the store with an admin login and a little demo data.
func Seed(s *Store, adminEmail, adminPassword string) error {
	if _, err := s.AddUser(adminEmail, adminPassword, roles.Admin, models.ProfileDetail{"name": "Sandbox Admin"}); err != nil {
		return err
	}
	for _, op := range []struct{ email, name, company string }{
		{"fibernet@netops.local", "Ravi", "FiberNet"},
		{"skylink@netops.local", "Meera", "SkyLink"},
	} {
		if _, err := s.AddUser(op.email, uuid.NewString(), roles.Operator, models.ProfileDetail{"name": op.name, "company": op.company}); err != nil {
			return err
		}
	}

	s.PutStock(models.StockItem{ItemName: "ONU GPON Router", Quantity: 40, UnitPrice: decimal.RequireFromString("1450"), CostPrice: decimal.RequireFromString("1200"), SellingPrice: decimal.RequireFromString("1800"), Category: "CPE", Brand: "Syrotech"})
	s.PutStock(models.StockItem{ItemName: "Drop Cable 1km", Quantity: 6, UnitPrice: decimal.RequireFromString("2300"), CostPrice: decimal.RequireFromString("2000"), SellingPrice: decimal.RequireFromString("2700"), Category: "Cable"})
	s.PutStock(models.StockItem{ItemName: "Patch Cord SC/APC", Quantity: 250, UnitPrice: decimal.RequireFromString("35.5"), CostPrice: decimal.RequireFromString("22"), SellingPrice: decimal.RequireFromString("50"), Category: "Accessories"})

	s.AddLeave(models.LeaveRequest{EmployeeID: "TECH-1", LeaveType: "casual", StartDate: "2024-06-03", EndDate: "2024-06-04", Status: metadata.LeavePending})
	s.AddTask(models.Task{Title: "Splice fault at junction 7", Priority: metadata.PriorityHigh, Status: metadata.TaskPending})
	return nil
}
