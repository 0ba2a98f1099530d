package auth

import (
	"time"

	"godiya-emr-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the single authenticated identity the route guard works
// with. It is carried as JWT claims; Timestamp is the moment the
// session was created (token issue time).
type Session struct {
	Email     string           `json:"email"`
	Role      models.StaffRole `json:"role"`
	Name      string           `json:"name"`
	Timestamp time.Time        `json:"timestamp"`
}

type JWTCustomClaims struct {
	Email string           `json:"email"`
	Role  models.StaffRole `json:"role"`
	Name  string           `json:"name"`
	jwt.RegisteredClaims
}

// Session converts the token claims back into the session record.
func (c *JWTCustomClaims) Session() Session {
	s := Session{
		Email: c.Email,
		Role:  c.Role,
		Name:  c.Name,
	}
	if c.IssuedAt != nil {
		s.Timestamp = c.IssuedAt.Time
	}
	return s
}

func GenerateToken(secret string, cred *Credential) (string, error) {
	claims := &JWTCustomClaims{
		Email: cred.Email,
		Role:  cred.Role,
		Name:  cred.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
