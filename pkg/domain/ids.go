package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when an identifier fails to parse at a trust boundary.
var ErrInvalidID = errors.New("invalid identifier")

// UserID identifies a user profile. Users are keyed by positive integers in the
// approval schema; zero is the "no user" value.
type UserID int64

// ParseUserID validates and returns a UserID. Leading and trailing whitespace,
// signs, and non-decimal input are rejected.
func ParseUserID(s string) (UserID, error) {
	if s == "" || strings.TrimSpace(s) != s || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: user id %q", ErrInvalidID, s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: user id %q", ErrInvalidID, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: user id must be positive", ErrInvalidID)
	}
	return UserID(v), nil
}

func (u UserID) String() string {
	return strconv.FormatInt(int64(u), 10)
}

// IsNil reports whether the id is unset.
func (u UserID) IsNil() bool {
	return u <= 0
}
