package navigation

import "godiya-emr-backend/internal/models"

// Item is one sidebar node. A node is either a leaf (Path set, no
// Children) or a group (Children set, no Path); the leaf and group
// constructors below are the only way trees are built, which keeps that
// exclusive-or intact.
type Item struct {
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Path     string `json:"path,omitempty"`
	Badge    string `json:"badge,omitempty"`
	Children []Item `json:"children,omitempty"`
}

// IsLeaf reports whether the item links directly to a route.
func (i Item) IsLeaf() bool {
	return len(i.Children) == 0
}

// Section is an ordered sidebar block with a heading.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

func leaf(icon, label, path string) Item {
	return Item{Icon: icon, Label: label, Path: path}
}

func badged(icon, label, path, badge string) Item {
	return Item{Icon: icon, Label: label, Path: path, Badge: badge}
}

func group(icon, label string, children ...Item) Item {
	return Item{Icon: icon, Label: label, Children: children}
}

// NavigationFor resolves the sidebar tree for a role. Pure
// configuration: no I/O, and callers get the shared tree value, so it
// must not be mutated. Unknown roles fall back to the super admin tree,
// the same explicit default as DashboardPathFor.
func NavigationFor(role models.StaffRole) []Section {
	switch role {
	case models.RoleSuperAdmin:
		return superAdminNav
	case models.RoleReception:
		return receptionNav
	case models.RoleCashier:
		return cashierNav
	case models.RoleDoctor:
		return doctorNav
	case models.RoleLaboratory:
		return laboratoryNav
	case models.RolePharmacy:
		return pharmacyNav
	case models.RoleNurse:
		return nurseNav
	default:
		return superAdminNav
	}
}

var superAdminNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/dashboard"),
		},
	},
	{
		Title: "Hospital",
		Items: []Item{
			group("users", "Patients",
				leaf("list", "All Patients", "/emr/admin/patients"),
				leaf("bed", "IPD", "/emr/admin/patients/ipd"),
				leaf("stethoscope", "OPD", "/emr/admin/patients/opd"),
			),
			leaf("calendar", "Appointments", "/emr/admin/appointments"),
			leaf("building", "Departments", "/emr/admin/departments"),
			leaf("id-card", "Staff", "/emr/admin/staff"),
		},
	},
	{
		Title: "Operations",
		Items: []Item{
			leaf("receipt", "Billing", "/emr/admin/billing"),
			leaf("flask", "Laboratory", "/emr/admin/laboratory"),
			leaf("pill", "Pharmacy", "/emr/admin/pharmacy"),
			leaf("mail", "Enquiries", "/emr/admin/enquiries"),
		},
	},
	{
		Title: "System",
		Items: []Item{
			leaf("history", "Audit Logs", "/emr/admin/audit-logs"),
			leaf("bell", "Notifications", "/emr/admin/notifications"),
			leaf("settings", "Settings", "/emr/admin/settings"),
		},
	},
}

var receptionNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/reception/dashboard"),
		},
	},
	{
		Title: "Patient Care",
		Items: []Item{
			group("users", "Patients",
				leaf("list", "All Patients", "/emr/reception/patients"),
				leaf("bed", "IPD", "/emr/reception/patients/ipd"),
				leaf("stethoscope", "OPD", "/emr/reception/patients/opd"),
			),
			leaf("calendar", "Appointments", "/emr/reception/appointments"),
			badged("mail", "Enquiries", "/emr/reception/enquiries", "new"),
		},
	},
	{
		Title: "Account",
		Items: []Item{
			leaf("bell", "Notifications", "/emr/reception/notifications"),
			leaf("settings", "Settings", "/emr/reception/settings"),
		},
	},
}

var cashierNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/cashier/dashboard"),
		},
	},
	{
		Title: "Billing",
		Items: []Item{
			leaf("file-text", "Invoices", "/emr/cashier/invoices"),
			leaf("credit-card", "Payments", "/emr/cashier/payments"),
			leaf("calendar", "Appointments", "/emr/cashier/appointments"),
		},
	},
	{
		Title: "Account",
		Items: []Item{
			leaf("bell", "Notifications", "/emr/cashier/notifications"),
			leaf("settings", "Settings", "/emr/cashier/settings"),
		},
	},
}

var doctorNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/doctor/dashboard"),
		},
	},
	{
		Title: "Clinical",
		Items: []Item{
			leaf("calendar", "Appointments", "/emr/doctor/appointments"),
			leaf("users", "My Patients", "/emr/doctor/patients"),
			leaf("clipboard", "Prescriptions", "/emr/doctor/prescriptions"),
			leaf("flask", "Lab Orders", "/emr/doctor/lab-orders"),
		},
	},
	{
		Title: "Account",
		Items: []Item{
			leaf("bell", "Notifications", "/emr/doctor/notifications"),
			leaf("settings", "Settings", "/emr/doctor/settings"),
		},
	},
}

var laboratoryNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/laboratory/dashboard"),
		},
	},
	{
		Title: "Laboratory",
		Items: []Item{
			badged("flask", "Test Orders", "/emr/laboratory/orders", "pending"),
			leaf("file-text", "Results", "/emr/laboratory/results"),
		},
	},
	{
		Title: "Account",
		Items: []Item{
			leaf("bell", "Notifications", "/emr/laboratory/notifications"),
			leaf("settings", "Settings", "/emr/laboratory/settings"),
		},
	},
}

var pharmacyNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/pharmacy/dashboard"),
		},
	},
	{
		Title: "Pharmacy",
		Items: []Item{
			leaf("pill", "Drugs", "/emr/pharmacy/drugs"),
			badged("package", "Stock", "/emr/pharmacy/stock", "low"),
			leaf("clipboard", "Dispense", "/emr/pharmacy/dispense"),
		},
	},
	{
		Title: "Account",
		Items: []Item{
			leaf("bell", "Notifications", "/emr/pharmacy/notifications"),
			leaf("settings", "Settings", "/emr/pharmacy/settings"),
		},
	},
}

var nurseNav = []Section{
	{
		Title: "Overview",
		Items: []Item{
			leaf("layout-dashboard", "Dashboard", "/emr/nurse/dashboard"),
		},
	},
	{
		Title: "Nursing",
		Items: []Item{
			leaf("users", "Patients", "/emr/nurse/patients"),
			leaf("activity", "Vital Signs", "/emr/nurse/vitals"),
		},
	},
	{
		Title: "Account",
		Items: []Item{
			leaf("bell", "Notifications", "/emr/nurse/notifications"),
			leaf("settings", "Settings", "/emr/nurse/settings"),
		},
	},
}

// IsActive reports whether an item should be highlighted for the
// current route. Leaves match on route equality only, never on prefix:
// "/emr/doctor" must not light up while "/emr/doctor/appointments" is
// open. Groups are active when any descendant leaf matches.
func IsActive(item Item, route string) bool {
	if item.IsLeaf() {
		return item.Path == route
	}
	for _, child := range item.Children {
		if IsActive(child, route) {
			return true
		}
	}
	return false
}
