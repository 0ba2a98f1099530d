package appointments

import (
	"strings"

	"godiya-emr-backend/internal/models"
)

// PageSize is the fixed page length used by the appointment register.
const PageSize = 10

// Filter is the predicate set the list view applies client-side in the
// prototype. The store hands back the full collection in insertion
// order; filtering happens here, pagination after.
type Filter struct {
	Query   string                   // free text: patient name, appointment number, doctor
	Status  models.AppointmentStatus // empty means any
	Payment models.PaymentStatus     // empty means any; derived, never stored
}

func (f Filter) matches(a models.Appointment) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Payment != "" && a.PaymentStatus() != f.Payment {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(a.Patient.FullName()), q) &&
			!strings.Contains(strings.ToLower(a.AppointmentNumber), q) &&
			!strings.Contains(strings.ToLower(a.DoctorName), q) {
			return false
		}
	}
	return true
}

// Apply returns the appointments passing the filter, preserving order.
func (f Filter) Apply(list []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		if f.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Paginate slices the list into fixed-size pages. Page numbers are
// 1-based; out-of-range pages clamp to the nearest valid page instead
// of erroring. An empty list yields page 1 of 1.
func Paginate(list []models.Appointment, page int) (items []models.Appointment, currentPage, totalPages int) {
	totalPages = (len(list) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(list) {
		start = len(list)
	}
	if end > len(list) {
		end = len(list)
	}

	return list[start:end], page, totalPages
}
