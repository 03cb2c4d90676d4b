package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// User is the admin view of an account. Credentials never leave the store.
// MiddleName, Age and Address are optional on registration and stay nil when unset.
type User struct {
	ID          int64
	Username    string
	Email       string
	FirstName   string
	MiddleName  *string
	LastName    string
	Age         *int
	Address     *string
	Role        string
	Preferences json.RawMessage
	Banned      bool
}

// ParseBan accepts only a JSON boolean. Unlike ParseLiked, 0/1 and quoted
// values are errors.
func ParseBan(raw json.RawMessage) (bool, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid ban value", ErrValidation)
	}
}
