package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadcrumbsFor(t *testing.T) {
	cases := []struct {
		name string
		path string
		want []Crumb
	}{
		{
			name: "reception ipd list",
			path: "/emr/reception/patients/ipd",
			want: []Crumb{
				{Label: "EMR", Path: "/emr"},
				{Label: "Reception", Path: "/emr/reception"},
				{Label: "Patients", Path: "/emr/reception/patients"},
				{Label: "IPD", Path: "/emr/reception/patients/ipd"},
			},
		},
		{
			name: "super admin dashboard",
			path: "/emr/dashboard",
			want: []Crumb{
				{Label: "EMR", Path: "/emr"},
				{Label: "Dashboard", Path: "/emr/dashboard"},
			},
		},
		{
			name: "unknown segment keeps raw text",
			path: "/emr/doctor/appointments/42",
			want: []Crumb{
				{Label: "EMR", Path: "/emr"},
				{Label: "Doctor", Path: "/emr/doctor"},
				{Label: "Appointments", Path: "/emr/doctor/appointments"},
				{Label: "42", Path: "/emr/doctor/appointments/42"},
			},
		},
		{
			name: "trailing slash ignored",
			path: "/emr/pharmacy/drugs/",
			want: []Crumb{
				{Label: "EMR", Path: "/emr"},
				{Label: "Pharmacy", Path: "/emr/pharmacy"},
				{Label: "Drugs", Path: "/emr/pharmacy/drugs"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BreadcrumbsFor(tc.path))
		})
	}
}

func TestBreadcrumbsForEmptyPath(t *testing.T) {
	assert.Nil(t, BreadcrumbsFor(""))
	assert.Nil(t, BreadcrumbsFor("/"))
}
