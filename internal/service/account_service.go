package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-demo/internal/operator/actions"
	"github.com/carson-networks/bank-demo/internal/storage/account"
)

const defaultAccountLimit = account.DefaultPageSize

// AccountService handles account business logic.
type AccountService struct {
	accounts account.IAccountReader
	operator actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts account.IAccountReader, op actionProcessor) *AccountService {
	return &AccountService{accounts: accounts, operator: op}
}

// CreateAccount stores a new account and returns it with its generated ID.
func (s *AccountService) CreateAccount(ctx context.Context, acc Account) (*Account, error) {
	action := &actions.CreateAccount{
		Balance:  acc.Balance,
		OpenedAt: acc.OpenedAt,
		Type:     acc.Type,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := accountFromStorage(action.Result)
	return &created, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	acc := accountFromStorage(row)
	return &acc, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	filter := &account.AccountFilter{
		Limit:  defaultAccountLimit,
		Offset: 0,
	}
	if cursor != nil {
		filter.Limit = cursor.Limit
		filter.Offset = cursor.Position
	}

	result, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	return accountsFromStorage(result.Accounts), nextCursor, nil
}

// ListAccountsByType returns every account of the given type.
func (s *AccountService) ListAccountsByType(ctx context.Context, accountType AccountType) ([]Account, error) {
	rows, err := s.accounts.FindByType(ctx, accountType)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}
