package navigation

import "godiya-emr-backend/internal/models"

const (
	loginPath           = "/emr/login"
	superAdminDashboard = "/emr/dashboard"
)

// DashboardPathFor maps a role to its landing route. Total over the
// role enum; an unknown role deliberately falls back to the super admin
// dashboard, matching the frontend's resolver.
func DashboardPathFor(role models.StaffRole) string {
	switch role {
	case models.RoleSuperAdmin:
		return superAdminDashboard
	case models.RoleReception:
		return "/emr/reception/dashboard"
	case models.RoleCashier:
		return "/emr/cashier/dashboard"
	case models.RoleDoctor:
		return "/emr/doctor/dashboard"
	case models.RoleLaboratory:
		return "/emr/laboratory/dashboard"
	case models.RolePharmacy:
		return "/emr/pharmacy/dashboard"
	case models.RoleNurse:
		return "/emr/nurse/dashboard"
	default:
		return superAdminDashboard
	}
}
