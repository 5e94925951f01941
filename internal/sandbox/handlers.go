package sandbox

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/auditlog"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/roles"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/security"

	"github.com/gin-gonic/gin"
)

// Some routes answer bare and some inside {success, data}, the way the
// real backend does.
func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

type UserHandler struct {
	store *Store
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", h.Me)
	router.GET("/operator/all", security.Authorize(roles.Staff), h.Operators)
	router.GET("/operator/:id", security.Authorize(roles.Staff, roles.Operator), h.Operator)
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, err := security.GetUserIDFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	user, err := h.store.UserByID(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	respondData(c, http.StatusOK, user)
}

func (h *UserHandler) Operators(c *gin.Context) {
	respondData(c, http.StatusOK, h.store.UsersWithRole(roles.Operator))
}

func (h *UserHandler) Operator(c *gin.Context) {
	user, err := h.store.UserByID(c.Param("id"))
	if err != nil || user.Role != roles.Operator {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Operator not found"})
		return
	}
	respondData(c, http.StatusOK, user)
}

type StockHandler struct {
	store    *Store
	auditLog *auditlog.Auditlog
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	read := security.Authorize(roles.Staff, roles.Operator)
	write := security.Authorize()

	router.GET("/inventory/stock", read, h.ListStock)
	router.POST("/inventory/stock", write, h.CreateStock)
	router.POST("/inventory/stock/issue", security.Authorize(roles.Staff), h.IssueStock)
	router.GET("/inventory/stock/:id", read, h.GetStock)
	router.PUT("/inventory/stock/:id", write, h.UpdateStock)
	router.DELETE("/inventory/stock/:id", write, h.DeleteStock)
	router.GET("/inventory/issuances", read, h.ListIssuances)
	router.PATCH("/inventory/issuances/:id/status", security.Authorize(roles.Staff), h.UpdateIssuanceStatus)
	router.GET("/inventory/movements", read, h.ListMovements)
	router.GET("/admin/audit-logs", write, h.ListAuditLogs)
}

func (h *StockHandler) ListStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListStock())
}

func (h *StockHandler) GetStock(c *gin.Context) {
	item, err := h.store.GetStock(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *StockHandler) CreateStock(c *gin.Context) {
	var item models.StockItem
	if err := c.ShouldBindJSON(&item); err != nil || item.ItemName == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	item.ID = ""

	created := h.store.PutStock(item)
	h.audit(c, "create", map[string]any{"quantity": created.Quantity}, created)
	c.JSON(http.StatusCreated, created)
}

// UpdateStock applies a partial document onto the stored item.
func (h *StockHandler) UpdateStock(c *gin.Context) {
	item, err := h.store.GetStock(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil || json.Unmarshal(raw, &item) != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	item.ID = c.Param("id")

	updated := h.store.PutStock(item)
	h.audit(c, "update", json.RawMessage(raw), updated)
	c.JSON(http.StatusOK, updated)
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	item, err := h.store.GetStock(c.Param("id"))
	if err == nil {
		err = h.store.DeleteStock(item.ID)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		return
	}
	h.audit(c, "delete", nil, item)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stock item deleted"})
}

func (h *StockHandler) IssueStock(c *gin.Context) {
	var req models.IssueStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.OperatorID == "" && req.TechnicianID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "operatorId or technicianId is required"})
		return
	}

	issuedBy, _ := security.GetUserIDFromContext(c)
	issuance, err := h.store.Issue(req, issuedBy)
	switch {
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Stock issue rejected", "message": err.Error()})
		return
	}

	h.audit(c, "issue", map[string]any{
		"lines": len(issuance.Items),
		"total": issuance.Total().StringFixed(2),
	}, issuance)
	respondData(c, http.StatusCreated, issuance)
}

func (h *StockHandler) ListIssuances(c *gin.Context) {
	respondData(c, http.StatusOK, h.store.ListIssuances())
}

func (h *StockHandler) UpdateIssuanceStatus(c *gin.Context) {
	var req models.IssuanceStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Known() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid issuance status"})
		return
	}

	issuance, err := h.store.SetIssuanceStatus(c.Param("id"), req.Status)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Issuance not found"})
		return
	}
	h.audit(c, "status", map[string]any{"status": req.Status}, issuance)
	respondData(c, http.StatusOK, issuance)
}

func (h *StockHandler) ListMovements(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListMovements())
}

func (h *StockHandler) ListAuditLogs(c *gin.Context) {
	respondData(c, http.StatusOK, h.auditLog.Entries())
}

func (h *StockHandler) audit(c *gin.Context, action string, data any, item auditlog.Auditable) {
	userID, _ := security.GetUserIDFromContext(c)
	h.auditLog.Log(action, userID, data, item)
}

type WorkflowHandler struct {
	store *Store
}

func (h *WorkflowHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/leave/requests", security.Authorize(roles.Staff), h.ListLeave)
	router.POST("/leave/requests", security.Authorize(roles.Staff, roles.Technician), h.ApplyLeave)
	router.PATCH("/leave/requests/:id/approve", security.Authorize(), h.decideLeave(metadata.LeaveApproved))
	router.PATCH("/leave/requests/:id/reject", security.Authorize(), h.decideLeave(metadata.LeaveRejected))
	router.GET("/tasks", security.Authorize(roles.Staff, roles.Technician), h.ListTasks)
	router.POST("/tasks", security.Authorize(roles.Staff), h.CreateTask)
}

func (h *WorkflowHandler) ListLeave(c *gin.Context) {
	respondData(c, http.StatusOK, h.store.ListLeave())
}

func (h *WorkflowHandler) ApplyLeave(c *gin.Context) {
	var req models.LeaveApplication
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	created := h.store.AddLeave(models.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     metadata.LeavePending,
	})
	respondData(c, http.StatusCreated, created)
}

func (h *WorkflowHandler) decideLeave(status metadata.LeaveStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		var decision models.LeaveDecision
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&decision); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
				return
			}
		}
		if decision.ApprovedBy == "" {
			decision.ApprovedBy, _ = security.GetUserIDFromContext(c)
		}

		updated, err := h.store.DecideLeave(c.Param("id"), status, decision)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Leave request not found"})
			return
		}
		respondData(c, http.StatusOK, updated)
	}
}

func (h *WorkflowHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTasks())
}

func (h *WorkflowHandler) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil || task.Title == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	task.ID = ""
	if task.Status == "" {
		task.Status = metadata.TaskPending
	}
	task.CreatedBy, _ = security.GetUserIDFromContext(c)

	c.JSON(http.StatusCreated, h.store.AddTask(task))
}
