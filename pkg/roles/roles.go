package roles

// Role is the account type a user is registered as.
type Role string

const (
	Admin      Role = "admin"
	Operator   Role = "operator"
	Technician Role = "technician"
	Vendor     Role = "vendor"
	Customer   Role = "customer"
	Staff      Role = "staff"
)

// All lists the roles in display order.
var All = []Role{Admin, Operator, Technician, Vendor, Customer, Staff}

func (r Role) IsValid() bool {
	for _, known := range All {
		if r == known {
			return true
		}
	}
	return false
}

// Dashboard is the back-office area a role lands on after login.
func (r Role) Dashboard() string {
	switch r {
	case Admin:
		return "admin"
	case Operator, Staff:
		return "operator"
	case Technician:
		return "technician"
	case Vendor:
		return "vendor"
	default:
		return "customer"
	}
}

func (r Role) String() string {
	return string(r)
}
