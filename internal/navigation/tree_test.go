package navigation

import (
	"testing"

	"godiya-emr-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardPathFor(t *testing.T) {
	cases := []struct {
		role models.StaffRole
		want string
	}{
		{models.RoleSuperAdmin, "/emr/dashboard"},
		{models.RoleReception, "/emr/reception/dashboard"},
		{models.RoleCashier, "/emr/cashier/dashboard"},
		{models.RoleDoctor, "/emr/doctor/dashboard"},
		{models.RoleLaboratory, "/emr/laboratory/dashboard"},
		{models.RolePharmacy, "/emr/pharmacy/dashboard"},
		{models.RoleNurse, "/emr/nurse/dashboard"},
		{models.StaffRole("intruder"), "/emr/dashboard"},
		{models.StaffRole(""), "/emr/dashboard"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DashboardPathFor(tc.role), "role %q", tc.role)
	}
}

func TestNavigationForEveryRole(t *testing.T) {
	for _, role := range models.AllRoles {
		sections := NavigationFor(role)
		require.NotEmpty(t, sections, "role %q must get a sidebar", role)

		// Resolving twice must give the same tree.
		assert.Equal(t, sections, NavigationFor(role))

		// First section always opens with the role's dashboard.
		require.NotEmpty(t, sections[0].Items)
		assert.Equal(t, DashboardPathFor(role), sections[0].Items[0].Path)

		for _, section := range sections {
			assert.NotEmpty(t, section.Title)
			for _, item := range section.Items {
				assertLeafGroupShape(t, item)
			}
		}
	}
}

func TestNavigationForUnknownRoleFallsBack(t *testing.T) {
	assert.Equal(t, NavigationFor(models.RoleSuperAdmin), NavigationFor(models.StaffRole("ghost")))
}

// Every node is either a leaf with a path or a group with children,
// never both and never neither.
func assertLeafGroupShape(t *testing.T, item Item) {
	t.Helper()
	if item.IsLeaf() {
		assert.NotEmpty(t, item.Path, "leaf %q needs a path", item.Label)
	} else {
		assert.Empty(t, item.Path, "group %q must not carry a path", item.Label)
		require.NotEmpty(t, item.Children)
		for _, child := range item.Children {
			assertLeafGroupShape(t, child)
		}
	}
}

func TestReceptionSidebarContents(t *testing.T) {
	sections := NavigationFor(models.RoleReception)
	require.Len(t, sections, 3)

	care := sections[1]
	assert.Equal(t, "Patient Care", care.Title)
	require.GreaterOrEqual(t, len(care.Items), 2)

	patientsGroup := care.Items[0]
	assert.Equal(t, "Patients", patientsGroup.Label)
	assert.False(t, patientsGroup.IsLeaf())
	require.Len(t, patientsGroup.Children, 3)
	assert.Equal(t, "/emr/reception/patients", patientsGroup.Children[0].Path)
	assert.Equal(t, "/emr/reception/patients/ipd", patientsGroup.Children[1].Path)
	assert.Equal(t, "/emr/reception/patients/opd", patientsGroup.Children[2].Path)

	appts := care.Items[1]
	assert.True(t, appts.IsLeaf())
	assert.Equal(t, "Appointments", appts.Label)
	assert.Equal(t, "/emr/reception/appointments", appts.Path)
}

func TestIsActiveExactMatchOnly(t *testing.T) {
	appointments := leaf("calendar", "Appointments", "/emr/doctor/appointments")

	assert.True(t, IsActive(appointments, "/emr/doctor/appointments"))
	assert.False(t, IsActive(appointments, "/emr/doctor"))
	assert.False(t, IsActive(appointments, "/emr/doctor/appointments/42"))
	assert.False(t, IsActive(appointments, ""))
}

func TestIsActiveGroupMatchesDescendants(t *testing.T) {
	patientsGroup := group("users", "Patients",
		leaf("list", "All Patients", "/emr/reception/patients"),
		leaf("bed", "IPD", "/emr/reception/patients/ipd"),
	)

	assert.True(t, IsActive(patientsGroup, "/emr/reception/patients"))
	assert.True(t, IsActive(patientsGroup, "/emr/reception/patients/ipd"))
	assert.False(t, IsActive(patientsGroup, "/emr/reception/patients/opd"))
	assert.False(t, IsActive(patientsGroup, "/emr/reception/dashboard"))
}
