package models

import (
	"fmt"
	"math/rand"
)

// NewRecordNumber builds a business identifier of the form
// "<PREFIX>-<6 digits>", e.g. "PT-483920". Uniqueness is enforced by
// the database index; callers retry on collision.
func NewRecordNumber(prefix string) string {
	return fmt.Sprintf("%s-%06d", prefix, rand.Intn(1000000))
}
