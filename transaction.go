package multibank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies the direction and nature of a ledger entry.
// Amounts are always positive; the kind encodes direction.
type TransactionKind string

const (
	KindDeposit     TransactionKind = "deposit"
	KindWithdrawal  TransactionKind = "withdrawal"
	KindTransferOut TransactionKind = "transfer_out"
	KindTransferIn  TransactionKind = "transfer_in"
	KindLoan        TransactionKind = "loan"
	KindRepayment   TransactionKind = "repayment"
	KindFee         TransactionKind = "fee"
)

// Transaction is an append-only ledger record. It is never mutated or
// removed once appended to an account's log.
type Transaction struct {
	ID               string          `json:"transaction_id"`
	Kind             TransactionKind `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Provider         string          `json:"provider"`
	Timestamp        time.Time       `json:"timestamp"`
	ResultingBalance decimal.Decimal `json:"resulting_balance"`
}

func newTransaction(kind TransactionKind, amount decimal.Decimal, description, provider string, resulting decimal.Decimal) Transaction {
	return Transaction{
		ID:               uuid.NewString(),
		Kind:             kind,
		Amount:           amount,
		Description:      description,
		Provider:         provider,
		Timestamp:        time.Now(),
		ResultingBalance: resulting,
	}
}

// TransactionResult reports a completed single-account operation.
type TransactionResult struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"new_balance"`
	NewSavings decimal.Decimal `json:"new_savings"`
	Timestamp  time.Time       `json:"timestamp"`
}

// TransferResult reports a completed cross-account transfer.
type TransferResult struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Amount         decimal.Decimal `json:"amount"`
	SourceProvider string          `json:"source_provider"`
	DestProvider   string          `json:"dest_provider"`
	SourceBalance  decimal.Decimal `json:"source_balance"`
	DestBalance    decimal.Decimal `json:"dest_balance"`
}
