package sqlconfig

// Table and column names as laid out by the migrations in /migrations.
const (
	AccountsTable         = "compte"
	AccountColumnID       = "id"
	AccountColumnBalance  = "solde"
	AccountColumnOpenedAt = "date"
	AccountColumnType     = "type"

	TransactionsTable            = "transaction"
	TransactionColumnID          = "id"
	TransactionColumnAmount      = "montant"
	TransactionColumnOccurredAt  = "date"
	TransactionColumnType        = "type"
	TransactionColumnAccountID   = "compte_id"
	TransactionAmountConstraint  = "transaction_montant_non_negative"
	TransactionAccountConstraint = "transaction_compte_id_fkey"

	SeedClaimTable      = "seed_claim"
	SeedClaimColumnName = "name"
)
