package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/storage"
	"github.com/carson-networks/bank-demo/internal/storage/account"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
	"github.com/carson-networks/bank-demo/internal/storage/transaction"
)

// DemoSeedName identifies the demo data set in the seed claim table.
const DemoSeedName = "demo"

type demoAccount struct {
	balance     decimal.Decimal
	accountType sqlconfig.AccountType
}

type demoTransaction struct {
	amount          decimal.Decimal
	transactionType sqlconfig.TransactionType
	accountIndex    int
}

var demoAccounts = []demoAccount{
	{balance: decimal.RequireFromString("1200.0"), accountType: sqlconfig.AccountTypeChecking},
	{balance: decimal.RequireFromString("5000.0"), accountType: sqlconfig.AccountTypeSavings},
	{balance: decimal.RequireFromString("250.5"), accountType: sqlconfig.AccountTypeChecking},
}

var demoTransactions = []demoTransaction{
	{amount: decimal.RequireFromString("200.0"), transactionType: sqlconfig.TransactionTypeDeposit, accountIndex: 0},
	{amount: decimal.RequireFromString("50.0"), transactionType: sqlconfig.TransactionTypeWithdrawal, accountIndex: 0},
	{amount: decimal.RequireFromString("400.0"), transactionType: sqlconfig.TransactionTypeDeposit, accountIndex: 1},
}

// SeedDemoData populates an empty store with the demo accounts and transactions.
// The claim is taken under an advisory lock, so concurrent starts seed at most once;
// a store that was already claimed or already holds accounts is left untouched.
type SeedDemoData struct {
	// Now stamps every seeded row. Defaults to time.Now.
	Now func() time.Time

	Seeded       bool
	Accounts     []*account.Account
	Transactions []*transaction.Transaction
}

// demoStore is the part of a write transaction the seed needs.
type demoStore interface {
	ClaimSeed(ctx context.Context, name string) (bool, error)
	CountAccounts(ctx context.Context) (int64, error)
	CreateAccount(ctx context.Context, create *account.AccountCreate) (*account.Account, error)
	InsertTransaction(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error)
}

type writerDemoStore struct {
	writer *storage.Writer
}

func (w writerDemoStore) ClaimSeed(ctx context.Context, name string) (bool, error) {
	return w.writer.ClaimSeed(ctx, name)
}

func (w writerDemoStore) CountAccounts(ctx context.Context) (int64, error) {
	return w.writer.Account.Count(ctx)
}

func (w writerDemoStore) CreateAccount(ctx context.Context, create *account.AccountCreate) (*account.Account, error) {
	return w.writer.Account.Create(ctx, create)
}

func (w writerDemoStore) InsertTransaction(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	return w.writer.Transaction.Insert(ctx, create)
}

func (s *SeedDemoData) Perform(ctx context.Context, writer *storage.Writer) error {
	return s.seed(ctx, writerDemoStore{writer: writer})
}

func (s *SeedDemoData) seed(ctx context.Context, store demoStore) error {
	claimed, err := store.ClaimSeed(ctx, DemoSeedName)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	count, err := store.CountAccounts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	stamp := now()

	accounts := make([]*account.Account, 0, len(demoAccounts))
	for _, demo := range demoAccounts {
		created, err := store.CreateAccount(ctx, &account.AccountCreate{
			Balance:  demo.balance,
			OpenedAt: stamp,
			Type:     demo.accountType,
		})
		if err != nil {
			return err
		}
		accounts = append(accounts, created)
	}

	transactions := make([]*transaction.Transaction, 0, len(demoTransactions))
	for _, demo := range demoTransactions {
		created, err := store.InsertTransaction(ctx, &transaction.TransactionCreate{
			Amount:     demo.amount,
			OccurredAt: stamp,
			Type:       demo.transactionType,
			AccountID:  accounts[demo.accountIndex].ID,
		})
		if err != nil {
			return err
		}
		transactions = append(transactions, created)
	}

	s.Seeded = true
	s.Accounts = accounts
	s.Transactions = transactions
	return nil
}
