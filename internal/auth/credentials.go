package auth

import (
	"godiya-emr-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Credential is one entry of the fixed demo login table. The dashboard
// is a prototype: accounts are shipped with the build, there is no
// registration flow and no credential storage in the database.
type Credential struct {
	Email    string
	Password string // demo plaintext, hashed once at startup
	Role     models.StaffRole
	Name     string
}

var credentialTable = []Credential{
	{Email: "ghaliyu@gmail.com", Password: "12345678", Role: models.RoleSuperAdmin, Name: "Dr. Ghali Yunusa"},
	{Email: "reception@godiyahospital.ng", Password: "12345678", Role: models.RoleReception, Name: "Halima Abubakar"},
	{Email: "cashier@godiyahospital.ng", Password: "12345678", Role: models.RoleCashier, Name: "Musa Ibrahim"},
	{Email: "doctor@godiyahospital.ng", Password: "12345678", Role: models.RoleDoctor, Name: "Dr. Amina Bello"},
	{Email: "lab@godiyahospital.ng", Password: "12345678", Role: models.RoleLaboratory, Name: "Sani Garba"},
	{Email: "pharmacy@godiyahospital.ng", Password: "12345678", Role: models.RolePharmacy, Name: "Fatima Usman"},
	{Email: "nurse@godiyahospital.ng", Password: "12345678", Role: models.RoleNurse, Name: "Zainab Mohammed"},
}

// passwordHashes holds a bcrypt hash per table entry, computed once so
// login compares hashes instead of raw strings.
var passwordHashes = func() map[string][]byte {
	hashes := make(map[string][]byte, len(credentialTable))
	for _, cred := range credentialTable {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		hashes[cred.Email] = hash
	}
	return hashes
}()

// Authenticate looks up the credential table. The email must match
// exactly (case-sensitive, no trimming) and the password must match the
// stored hash. Every failure collapses to the same (nil, false) result,
// a caller cannot tell a wrong password from an unknown email.
func Authenticate(email, password string) (*Credential, bool) {
	for i := range credentialTable {
		cred := &credentialTable[i]
		if cred.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(passwordHashes[cred.Email], []byte(password)); err != nil {
			return nil, false
		}
		return cred, true
	}
	return nil, false
}

// Credentials returns a copy of the demo login table, used to seed the
// staff directory.
func Credentials() []Credential {
	out := make([]Credential, len(credentialTable))
	copy(out, credentialTable)
	return out
}
