package api

import (
	"net/http"
	"sort"
)

const (
	get   = http.MethodGet
	post  = http.MethodPost
	put   = http.MethodPut
	patch = http.MethodPatch
	del   = http.MethodDelete
)

// endpointTable is the full backend surface, one row per call. It is fixed
// at build time; callers get copies through Endpoints.
var endpointTable = []Endpoint{
	// auth
	{"auth", "login", post, "/auth/login", false},
	{"auth", "logout", post, "/auth/logout", true},
	{"auth", "me", get, "/auth/me", true},
	{"auth", "changePassword", put, "/auth/change-password", true},
	{"auth", "forgotPassword", post, "/auth/forgot-password", false},
	{"auth", "resetPassword", post, "/auth/reset-password", false},

	// admin
	{"admin", "getDashboardStats", get, "/admin/dashboard/stats", true},
	{"admin", "getAllUsers", get, "/admin/users", true},
	{"admin", "getUser", get, "/admin/users/{id}", true},
	{"admin", "updateUserStatus", patch, "/admin/users/{id}/status", true},
	{"admin", "deleteUser", del, "/admin/users/{id}", true},
	{"admin", "getAllOperators", get, "/admin/operators", true},
	{"admin", "createOperator", post, "/admin/operators", true},
	{"admin", "updateOperator", put, "/admin/operators/{id}", true},
	{"admin", "deleteOperator", del, "/admin/operators/{id}", true},
	{"admin", "getAllVendors", get, "/admin/vendors", true},
	{"admin", "approveVendor", patch, "/admin/vendors/{id}/approve", true},
	{"admin", "getSystemSettings", get, "/admin/settings", true},
	{"admin", "updateSystemSettings", put, "/admin/settings", true},
	{"admin", "getAuditLogs", get, "/admin/audit-logs", true},

	// operator
	{"operator", "register", post, "/operator/register", true},
	{"operator", "getAll", get, "/operator/all", true},
	{"operator", "getById", get, "/operator/{id}", true},
	{"operator", "updateProfile", put, "/operator/{id}/profile", true},
	{"operator", "delete", del, "/operator/{id}", true},
	{"operator", "getDashboard", get, "/operator/{id}/dashboard", true},
	{"operator", "getTechnicians", get, "/operator/{id}/technicians", true},
	{"operator", "getCustomers", get, "/operator/{id}/customers", true},
	{"operator", "getStock", get, "/operator/{id}/stock", true},
	{"operator", "getIssuances", get, "/operator/{id}/issuances", true},
	{"operator", "getInvoices", get, "/operator/{id}/invoices", true},
	{"operator", "getComplaints", get, "/operator/{id}/complaints", true},
	{"operator", "getPlans", get, "/operator/{id}/plans", true},
	{"operator", "createPlan", post, "/operator/{id}/plans", true},

	// technician
	{"technician", "register", post, "/technician/register", true},
	{"technician", "getAll", get, "/technician/all", true},
	{"technician", "getById", get, "/technician/{id}", true},
	{"technician", "updateProfile", put, "/technician/{id}/profile", true},
	{"technician", "delete", del, "/technician/{id}", true},
	{"technician", "getTasks", get, "/technician/{id}/tasks", true},
	{"technician", "getComplaints", get, "/technician/{id}/complaints", true},
	{"technician", "getStock", get, "/technician/{id}/stock", true},
	{"technician", "recordInstallation", post, "/technician/{id}/installations", true},
	{"technician", "getAttendance", get, "/technician/{id}/attendance", true},
	{"technician", "markAttendance", post, "/technician/{id}/attendance", true},

	// inventory
	{"inventory", "getAllStockProducts", get, "/inventory/stock", true},
	{"inventory", "getStockProduct", get, "/inventory/stock/{id}", true},
	{"inventory", "addStockProduct", post, "/inventory/stock", true},
	{"inventory", "updateStockProduct", put, "/inventory/stock/{id}", true},
	{"inventory", "deleteStockProduct", del, "/inventory/stock/{id}", true},
	{"inventory", "issueStock", post, "/inventory/stock/issue", true},
	{"inventory", "getLowStock", get, "/inventory/stock/low", true},
	{"inventory", "getIssuances", get, "/inventory/issuances", true},
	{"inventory", "getIssuance", get, "/inventory/issuances/{id}", true},
	{"inventory", "updateIssuanceStatus", patch, "/inventory/issuances/{id}/status", true},
	{"inventory", "getMovements", get, "/inventory/movements", true},
	{"inventory", "getCategories", get, "/inventory/categories", true},
	{"inventory", "addCategory", post, "/inventory/categories", true},
	{"inventory", "getSuppliers", get, "/inventory/suppliers", true},
	{"inventory", "addSupplier", post, "/inventory/suppliers", true},
	{"inventory", "getStockSummary", get, "/inventory/summary", true},

	// leave
	{"leave", "getRequests", get, "/leave/requests", true},
	{"leave", "getRequest", get, "/leave/requests/{id}", true},
	{"leave", "apply", post, "/leave/requests", true},
	{"leave", "update", put, "/leave/requests/{id}", true},
	{"leave", "cancel", del, "/leave/requests/{id}", true},
	{"leave", "approve", patch, "/leave/requests/{id}/approve", true},
	{"leave", "reject", patch, "/leave/requests/{id}/reject", true},
	{"leave", "getBalance", get, "/leave/balance/{userId}", true},
	{"leave", "getTypes", get, "/leave/types", true},
	{"leave", "getByEmployee", get, "/leave/employee/{employeeId}", true},

	// marketplace
	{"marketplace", "getProducts", get, "/marketplace/products", true},
	{"marketplace", "getProduct", get, "/marketplace/products/{id}", true},
	{"marketplace", "search", get, "/marketplace/search", true},
	{"marketplace", "getCategories", get, "/marketplace/categories", true},
	{"marketplace", "getVendors", get, "/marketplace/vendors", true},
	{"marketplace", "getCart", get, "/marketplace/cart", true},
	{"marketplace", "addToCart", post, "/marketplace/cart", true},
	{"marketplace", "removeFromCart", del, "/marketplace/cart/{itemId}", true},
	{"marketplace", "checkout", post, "/marketplace/checkout", true},

	// task
	{"task", "getAll", get, "/tasks", true},
	{"task", "getById", get, "/tasks/{id}", true},
	{"task", "create", post, "/tasks", true},
	{"task", "update", put, "/tasks/{id}", true},
	{"task", "delete", del, "/tasks/{id}", true},
	{"task", "updateStatus", patch, "/tasks/{id}/status", true},
	{"task", "assign", patch, "/tasks/{id}/assign", true},
	{"task", "getByAssignee", get, "/tasks/assignee/{userId}", true},
	{"task", "addComment", post, "/tasks/{id}/comments", true},
	{"task", "getStats", get, "/tasks/stats", true},

	// vendor
	{"vendor", "register", post, "/vendor/register", true},
	{"vendor", "getAll", get, "/vendor/all", true},
	{"vendor", "getById", get, "/vendor/{id}", true},
	{"vendor", "updateProfile", put, "/vendor/{id}/profile", true},
	{"vendor", "delete", del, "/vendor/{id}", true},
	{"vendor", "getProducts", get, "/vendor/{id}/products", true},
	{"vendor", "getOrders", get, "/vendor/{id}/orders", true},
	{"vendor", "getDashboard", get, "/vendor/{id}/dashboard", true},
	{"vendor", "getPayouts", get, "/vendor/{id}/payouts", true},

	// customer
	{"customer", "register", post, "/customer/register", true},
	{"customer", "getAll", get, "/customer/all", true},
	{"customer", "getById", get, "/customer/{id}", true},
	{"customer", "updateProfile", put, "/customer/{id}/profile", true},
	{"customer", "delete", del, "/customer/{id}", true},
	{"customer", "getByOperator", get, "/customer/operator/{operatorId}", true},
	{"customer", "getSubscription", get, "/customer/{id}/subscription", true},
	{"customer", "updateSubscription", put, "/customer/{id}/subscription", true},
	{"customer", "getBills", get, "/customer/{id}/bills", true},
	{"customer", "getComplaints", get, "/customer/{id}/complaints", true},

	// complaint
	{"complaint", "getAll", get, "/complaints", true},
	{"complaint", "getById", get, "/complaints/{id}", true},
	{"complaint", "create", post, "/complaints", true},
	{"complaint", "update", put, "/complaints/{id}", true},
	{"complaint", "delete", del, "/complaints/{id}", true},
	{"complaint", "updateStatus", patch, "/complaints/{id}/status", true},
	{"complaint", "assign", patch, "/complaints/{id}/assign", true},
	{"complaint", "addComment", post, "/complaints/{id}/comments", true},
	{"complaint", "getStats", get, "/complaints/stats", true},

	// billing
	{"billing", "getInvoices", get, "/billing/invoices", true},
	{"billing", "getInvoice", get, "/billing/invoices/{id}", true},
	{"billing", "createInvoice", post, "/billing/invoices", true},
	{"billing", "updateInvoice", put, "/billing/invoices/{id}", true},
	{"billing", "deleteInvoice", del, "/billing/invoices/{id}", true},
	{"billing", "markPaid", patch, "/billing/invoices/{id}/paid", true},
	{"billing", "sendInvoice", post, "/billing/invoices/{id}/send", true},
	{"billing", "getPayments", get, "/billing/payments", true},
	{"billing", "recordPayment", post, "/billing/payments", true},
	{"billing", "getPlans", get, "/billing/plans", true},
	{"billing", "getSummary", get, "/billing/summary", true},

	// analytics
	{"analytics", "getOverview", get, "/analytics/overview", true},
	{"analytics", "getRevenue", get, "/analytics/revenue", true},
	{"analytics", "getCustomerGrowth", get, "/analytics/customers/growth", true},
	{"analytics", "getInventoryReport", get, "/analytics/inventory", true},
	{"analytics", "getTechnicianPerformance", get, "/analytics/technicians/performance", true},
	{"analytics", "getComplaintTrends", get, "/analytics/complaints/trends", true},
	{"analytics", "getSalesReport", get, "/analytics/sales", true},
	{"analytics", "getOperatorReport", get, "/analytics/operators/{id}", true},
	{"analytics", "exportReport", post, "/analytics/export", true},

	// notification
	{"notification", "getAll", get, "/notifications", true},
	{"notification", "getUnreadCount", get, "/notifications/unread-count", true},
	{"notification", "markRead", patch, "/notifications/{id}/read", true},
	{"notification", "markAllRead", patch, "/notifications/read-all", true},
	{"notification", "delete", del, "/notifications/{id}", true},
	{"notification", "send", post, "/notifications", true},
	{"notification", "getPreferences", get, "/notifications/preferences", true},
	{"notification", "updatePreferences", put, "/notifications/preferences", true},

	// order
	{"order", "getAll", get, "/orders", true},
	{"order", "getById", get, "/orders/{id}", true},
	{"order", "create", post, "/orders", true},
	{"order", "updateStatus", patch, "/orders/{id}/status", true},
	{"order", "cancel", patch, "/orders/{id}/cancel", true},
	{"order", "getByOperator", get, "/orders/operator/{operatorId}", true},
	{"order", "getByVendor", get, "/orders/vendor/{vendorId}", true},
	{"order", "track", get, "/orders/{id}/tracking", true},

	// product
	{"product", "getAll", get, "/products", true},
	{"product", "getById", get, "/products/{id}", true},
	{"product", "create", post, "/products", true},
	{"product", "update", put, "/products/{id}", true},
	{"product", "delete", del, "/products/{id}", true},
	{"product", "getByVendor", get, "/products/vendor/{vendorId}", true},
	{"product", "updateStock", patch, "/products/{id}/stock", true},
	{"product", "addReview", post, "/products/{id}/reviews", true},

	// staff
	{"staff", "register", post, "/staff/register", true},
	{"staff", "getAll", get, "/staff/all", true},
	{"staff", "getById", get, "/staff/{id}", true},
	{"staff", "updateProfile", put, "/staff/{id}/profile", true},
	{"staff", "delete", del, "/staff/{id}", true},
	{"staff", "getPayroll", get, "/staff/{id}/payroll", true},
	{"staff", "updateSalary", patch, "/staff/{id}/salary", true},
	{"staff", "getAttendance", get, "/staff/{id}/attendance", true},
}

type endpointKey struct{ facade, name string }

var endpointIndex = indexEndpoints(endpointTable)

func indexEndpoints(endpoints []Endpoint) map[endpointKey]Endpoint {
	index := make(map[endpointKey]Endpoint, len(endpoints))
	for _, e := range endpoints {
		index[endpointKey{e.Facade, e.Name}] = e
	}
	return index
}

// Endpoints returns a copy of the whole table in declaration order.
func Endpoints() []Endpoint {
	return append([]Endpoint(nil), endpointTable...)
}

// Lookup finds the endpoint bound to facade.name.
func Lookup(facade, name string) (Endpoint, bool) {
	e, ok := endpointIndex[endpointKey{facade, name}]
	return e, ok
}

// Facades returns the sorted facade names.
func Facades() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, e := range endpointTable {
		if _, ok := seen[e.Facade]; ok {
			continue
		}
		seen[e.Facade] = struct{}{}
		names = append(names, e.Facade)
	}
	sort.Strings(names)
	return names
}

// EndpointsFor returns the endpoints of one facade in table order.
func EndpointsFor(facade string) []Endpoint {
	var out []Endpoint
	for _, e := range endpointTable {
		if e.Facade == facade {
			out = append(out, e)
		}
	}
	return out
}
