package models

import "time"

type StaffRole string

const (
	RoleSuperAdmin StaffRole = "super_admin"
	RoleReception  StaffRole = "reception"
	RoleCashier    StaffRole = "cashier"
	RoleDoctor     StaffRole = "doctor"
	RoleLaboratory StaffRole = "laboratory"
	RolePharmacy   StaffRole = "pharmacy"
	RoleNurse      StaffRole = "nurse"
)

// AllRoles lists every role the EMR knows about, in display order.
var AllRoles = []StaffRole{
	RoleSuperAdmin,
	RoleReception,
	RoleCashier,
	RoleDoctor,
	RoleLaboratory,
	RolePharmacy,
	RoleNurse,
}

// Valid reports whether r is one of the seven known roles.
func (r StaffRole) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Staff is the hospital staff directory entry shown on the super admin
// dashboard. Login identities come from the fixed credential table in
// the auth package, not from this table.
type Staff struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"size:100;not null" json:"name"`
	Email        string      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role         StaffRole   `gorm:"size:20;not null" json:"role"`
	DepartmentID *uint       `json:"department_id"`
	Department   *Department `json:"department,omitempty"`
	Phone        string      `gorm:"size:50" json:"phone"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
