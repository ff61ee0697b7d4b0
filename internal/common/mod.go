package common

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

const (
	REQUEST_TIMEOUT_SECS = 2 * 60 * time.Second

	MIN_PASSWORD_LENGTH = 8

	PermManageUsers    = "manage_users"
	PermManageMaster   = "manage_master_data"
	PermManageProducts = "manage_products"
)

// IsEmptyString checks if a string is empty.
func IsEmptyString(s string) bool {
	return strings.Compare(s, "") == 0
}
