package appointments

import (
	"fmt"
	"testing"

	"godiya-emr-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			AppointmentNumber: "APT-000001",
			Patient:           models.Patient{FirstName: "Ahmed", LastName: "Danjuma"},
			DoctorName:        "Dr. Amina Bello",
			Status:            models.AppointmentScheduled,
		},
		{
			AppointmentNumber: "APT-000002",
			Patient:           models.Patient{FirstName: "Grace", LastName: "Okafor"},
			DoctorName:        "Dr. Amina Bello",
			Status:            models.AppointmentCompleted,
		},
		{
			AppointmentNumber: "APT-000003",
			Patient:           models.Patient{FirstName: "Ibrahim", LastName: "Sule"},
			DoctorName:        "Dr. Yusuf Adamu",
			Status:            models.AppointmentCancelled,
		},
	}
}

func TestFilterByStatus(t *testing.T) {
	got := Filter{Status: models.AppointmentCompleted}.Apply(sampleAppointments())
	require.Len(t, got, 1)
	assert.Equal(t, "APT-000002", got[0].AppointmentNumber)
}

func TestFilterByPaymentStatus(t *testing.T) {
	// Payment is derived from status: only completed visits count as paid.
	paid := Filter{Payment: models.PaymentPaid}.Apply(sampleAppointments())
	require.Len(t, paid, 1)
	assert.Equal(t, models.AppointmentCompleted, paid[0].Status)

	unpaid := Filter{Payment: models.PaymentUnpaid}.Apply(sampleAppointments())
	require.Len(t, unpaid, 2)
	for _, a := range unpaid {
		assert.NotEqual(t, models.AppointmentCompleted, a.Status)
	}
}

func TestFilterByQuery(t *testing.T) {
	list := sampleAppointments()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"patient name, case-insensitive", "grace oka", []string{"APT-000002"}},
		{"appointment number", "apt-000003", []string{"APT-000003"}},
		{"doctor name matches two", "amina", []string{"APT-000001", "APT-000002"}},
		{"no match", "zzz", nil},
		{"empty query matches all", "", []string{"APT-000001", "APT-000002", "APT-000003"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter{Query: tc.query}.Apply(list)
			numbers := make([]string, 0, len(got))
			for _, a := range got {
				numbers = append(numbers, a.AppointmentNumber)
			}
			if tc.want == nil {
				assert.Empty(t, numbers)
			} else {
				assert.Equal(t, tc.want, numbers)
			}
		})
	}
}

func TestFilterCombined(t *testing.T) {
	got := Filter{Query: "amina", Status: models.AppointmentScheduled}.Apply(sampleAppointments())
	require.Len(t, got, 1)
	assert.Equal(t, "APT-000001", got[0].AppointmentNumber)
}

func TestPaginate(t *testing.T) {
	list := make([]models.Appointment, 23)
	for i := range list {
		list[i].AppointmentNumber = fmt.Sprintf("APT-%06d", i+1)
	}

	items, page, total := Paginate(list, 1)
	assert.Len(t, items, PageSize)
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, total)
	assert.Equal(t, "APT-000001", items[0].AppointmentNumber)

	items, page, _ = Paginate(list, 3)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, page)
	assert.Equal(t, "APT-000021", items[0].AppointmentNumber)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	list := make([]models.Appointment, 12)

	items, page, total := Paginate(list, 99)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)

	items, page, _ = Paginate(list, 0)
	assert.Equal(t, 1, page)
	assert.Len(t, items, PageSize)

	items, page, _ = Paginate(list, -5)
	assert.Equal(t, 1, page)
	assert.Len(t, items, PageSize)
}

func TestPaginateEmptyList(t *testing.T) {
	items, page, total := Paginate(nil, 4)
	assert.Empty(t, items)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, total)
}
