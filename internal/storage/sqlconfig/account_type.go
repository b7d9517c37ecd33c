package sqlconfig

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

var ErrUnknownAccountType = errors.New("unknown account type")

type AccountType int8

const (
	AccountTypeChecking AccountType = iota
	AccountTypeSavings
)

// Persisted names of each AccountType. The set is closed: anything else is rejected.
var accountTypeNames = map[AccountType]string{
	AccountTypeChecking: "COURANT",
	AccountTypeSavings:  "EPARGNE",
}

// AccountTypes lists every valid AccountType in declaration order.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypeChecking, AccountTypeSavings}
}

func (t AccountType) Valid() bool {
	_, ok := accountTypeNames[t]
	return ok
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AccountType(%d)", int8(t))
}

// ParseAccountType maps a persisted name back to its AccountType.
func ParseAccountType(name string) (AccountType, error) {
	for t, n := range accountTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAccountType, name)
}

func (t AccountType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAccountType, int8(t))
	}
	return []byte(t.String()), nil
}

func (t *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t AccountType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAccountType, int8(t))
	}
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *AccountType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrUnknownAccountType, src)
	}
}
