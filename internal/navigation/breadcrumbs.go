package navigation

import "strings"

type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// segmentLabels maps known route segments to their display names.
// Segments without an entry fall back to the raw segment text.
var segmentLabels = map[string]string{
	"emr":           "EMR",
	"dashboard":     "Dashboard",
	"admin":         "Administration",
	"reception":     "Reception",
	"cashier":       "Cashier",
	"doctor":        "Doctor",
	"laboratory":    "Laboratory",
	"pharmacy":      "Pharmacy",
	"nurse":         "Nurse",
	"patients":      "Patients",
	"ipd":           "IPD",
	"opd":           "OPD",
	"appointments":  "Appointments",
	"departments":   "Departments",
	"staff":         "Staff",
	"billing":       "Billing",
	"invoices":      "Invoices",
	"payments":      "Payments",
	"enquiries":     "Enquiries",
	"orders":        "Test Orders",
	"results":       "Results",
	"drugs":         "Drugs",
	"stock":         "Stock",
	"dispense":      "Dispense",
	"prescriptions": "Prescriptions",
	"lab-orders":    "Lab Orders",
	"vitals":        "Vital Signs",
	"audit-logs":    "Audit Logs",
	"notifications": "Notifications",
	"settings":      "Settings",
}

// BreadcrumbsFor splits a route into labelled crumbs, one per segment,
// each carrying the cumulative path up to that segment.
func BreadcrumbsFor(path string) []Crumb {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	segments := strings.Split(trimmed, "/")
	crumbs := make([]Crumb, 0, len(segments))
	current := ""
	for _, seg := range segments {
		current += "/" + seg
		label, ok := segmentLabels[seg]
		if !ok {
			label = seg
		}
		crumbs = append(crumbs, Crumb{Label: label, Path: current})
	}
	return crumbs
}
