package guard

import "strings"

// Route declares one navigable screen and its access requirements.
// RequiresAuth defaults to false; Permission is advisory unless the guard
// is configured to enforce it.
type Route struct {
	Path         string
	Name         string
	Title        string
	RequiresAuth bool
	Permission   string
}

// Table is a static route-to-requirements mapping. Matching supports exact
// segments, ":param" placeholders, and a trailing "*" catch-all.
type Table struct {
	routes []Route
}

// NewTable builds a table from the given routes. Order matters: the first
// matching route wins.
func NewTable(routes ...Route) *Table {
	return &Table{routes: routes}
}

// Match finds the route for path.
func (t *Table) Match(path string) (Route, bool) {
	for _, r := range t.routes {
		if matchPath(r.Path, path) {
			return r, true
		}
	}
	return Route{}, false
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternSegs := splitPath(pattern)
	pathSegs := splitPath(path)

	for i, seg := range patternSegs {
		if seg == "*" {
			return true
		}
		if i >= len(pathSegs) {
			return false
		}
		if strings.HasPrefix(seg, ":") {
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}

	return len(patternSegs) == len(pathSegs)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// DefaultTable mirrors the ERP shell's route declarations.
func DefaultTable() *Table {
	return NewTable(
		Route{Path: "/", Name: "Dashboard", Title: "Dashboard", RequiresAuth: true},
		// CRM
		Route{Path: "/crm/leads", Name: "Leads", Title: "Leads", RequiresAuth: true, Permission: "crm.view"},
		Route{Path: "/crm/customers", Name: "Customers", Title: "Customers", RequiresAuth: true, Permission: "crm.view"},
		Route{Path: "/crm/customers/:id", Name: "Customer360", Title: "Customer 360", RequiresAuth: true, Permission: "crm.view"},
		// HRM
		Route{Path: "/hrm/employees", Name: "Employees", Title: "Employees", RequiresAuth: true, Permission: "hrm.view"},
		Route{Path: "/hrm/payroll", Name: "Payroll", Title: "Payroll", RequiresAuth: true, Permission: "hrm.view"},
		// Inventory
		Route{Path: "/inventory/warehouses", Name: "Warehouses", Title: "Warehouses", RequiresAuth: true, Permission: "inventory.view"},
		Route{Path: "/inventory/skus", Name: "SKUs", Title: "SKUs", RequiresAuth: true, Permission: "inventory.view"},
		Route{Path: "/inventory/stock", Name: "Stock", Title: "Stock", RequiresAuth: true, Permission: "inventory.view"},
		Route{Path: "/inventory/purchase-orders", Name: "PurchaseOrders", Title: "Purchase Orders", RequiresAuth: true, Permission: "inventory.view"},
		// Project management
		Route{Path: "/pm/projects", Name: "Projects", Title: "Projects", RequiresAuth: true, Permission: "pm.view"},
		Route{Path: "/pm/projects/:id", Name: "ProjectDetail", Title: "Project", RequiresAuth: true, Permission: "pm.view"},
		Route{Path: "/pm/timesheets", Name: "Timesheets", Title: "Timesheets", RequiresAuth: true, Permission: "pm.view"},
		// Finance
		Route{Path: "/finance/invoices", Name: "Invoices", Title: "Invoices", RequiresAuth: true, Permission: "finance.view"},
		// Users & roles
		Route{Path: "/auth/users", Name: "AuthUsers", Title: "Users", RequiresAuth: true, Permission: "auth.view"},
		Route{Path: "/auth/roles", Name: "AuthRoles", Title: "Roles", RequiresAuth: true, Permission: "auth.view"},
		// Public auth pages
		Route{Path: "/signin", Name: "Signin", Title: "Sign In"},
		Route{Path: "/signup", Name: "Signup", Title: "Sign Up"},
		Route{Path: "/signin/callback", Name: "SigninCallback", Title: "Sign In"},
		// Catch-all 404
		Route{Path: "/*", Name: "NotFound", Title: "404"},
	)
}
