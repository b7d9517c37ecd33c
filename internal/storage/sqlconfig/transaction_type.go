package sqlconfig

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

var ErrUnknownTransactionType = errors.New("unknown transaction type")

type TransactionType int8

const (
	TransactionTypeDeposit TransactionType = iota
	TransactionTypeWithdrawal
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeDeposit:    "DEPOT",
	TransactionTypeWithdrawal: "RETRAIT",
}

// TransactionTypes lists every valid TransactionType in declaration order.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeDeposit, TransactionTypeWithdrawal}
}

func (t TransactionType) Valid() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", int8(t))
}

func ParseTransactionType(name string) (TransactionType, error) {
	for t, n := range transactionTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, name)
}

func (t TransactionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransactionType, int8(t))
	}
	return []byte(t.String()), nil
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransactionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransactionType, int8(t))
	}
	return t.String(), nil
}

func (t *TransactionType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrUnknownTransactionType, src)
	}
}
