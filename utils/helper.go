package utils

import (
	"github.com/google/uuid"
)

// StringToUUIDPtr converts a string to UUID pointer
func StringToUUIDPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &u
}

// StringPtr returns a pointer to the string value
func StringPtr(s string) *string {
	return &s
}

// UUIDPtrToString converts a UUID pointer to a string, "" when nil.
func UUIDPtrToString(u *uuid.UUID) string {
	if u == nil {
		return ""
	}
	return u.String()
}
