package multibank

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Account is the capability contract the linking core consumes. Any
// account-like variant (checking, external provider stub, test double)
// satisfies it. Implementations are not required to be safe for
// concurrent use; the owning Registry serializes all mutation.
type Account interface {
	Provider() string
	Name() string
	Balance() decimal.Decimal
	Savings() decimal.Decimal
	CreditLimit() decimal.Decimal
	AutoSavingsRate() decimal.Decimal
	// ApplyDelta adjusts the balance by a signed amount. It fails with
	// ErrInsufficientFunds when the result would drop below the
	// negative credit limit, leaving the balance untouched.
	ApplyDelta(decimal.Decimal) error
	// ApplySavingsDelta adjusts the savings sub-balance; savings never
	// go negative.
	ApplySavingsDelta(decimal.Decimal) error
	AppendTransaction(Transaction)
	Transactions() []Transaction
}

var (
	idNodeOnce sync.Once
	idNode     *snowflake.Node
)

func nextAccountID() snowflake.ID {
	idNodeOnce.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
		idNode = n
	})
	return idNode.Generate()
}

// BankAccount is the in-memory account record. Balance may go negative
// down to -CreditLimit. Deposits split an auto-savings percentage into
// the savings sub-balance.
type BankAccount struct {
	id          snowflake.ID
	provider    string
	name        string
	balance     decimal.Decimal
	savings     decimal.Decimal
	creditLimit decimal.Decimal
	autoSavings decimal.Decimal // percent of each deposit, 0..100
	log         []Transaction
}

var (
	_ Account = (*BankAccount)(nil)

	defaultAutoSavings = decimal.NewFromInt(5)
	oneHundred         = decimal.NewFromInt(100)
	maintenanceFee     = decimal.NewFromInt(5)
)

// NewBankAccount creates an account with the given opening balance.
// A negative opening balance or credit limit is rejected.
func NewBankAccount(provider, name string, balance, creditLimit decimal.Decimal) (*BankAccount, error) {
	fields := map[string]string{}
	if provider == "" {
		fields["provider"] = "must not be empty"
	}
	if balance.IsNegative() {
		fields["balance"] = "opening balance cannot be negative"
	}
	if creditLimit.IsNegative() {
		fields["credit_limit"] = "credit limit cannot be negative"
	}
	if len(fields) > 0 {
		return nil, ErrValidation{Fields: fields}
	}
	return &BankAccount{
		id:          nextAccountID(),
		provider:    provider,
		name:        name,
		balance:     balance,
		creditLimit: creditLimit,
		autoSavings: defaultAutoSavings,
	}, nil
}

func (a *BankAccount) ID() snowflake.ID                 { return a.id }
func (a *BankAccount) Provider() string                 { return a.provider }
func (a *BankAccount) Name() string                     { return a.name }
func (a *BankAccount) Balance() decimal.Decimal         { return a.balance }
func (a *BankAccount) Savings() decimal.Decimal         { return a.savings }
func (a *BankAccount) CreditLimit() decimal.Decimal     { return a.creditLimit }
func (a *BankAccount) AutoSavingsRate() decimal.Decimal { return a.autoSavings }

// SetAutoSavingsRate sets the percentage of each deposit diverted to
// savings. Valid range is 0 to 100 inclusive.
func (a *BankAccount) SetAutoSavingsRate(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(oneHundred) {
		return ErrValidation{Fields: map[string]string{
			"percent": "auto-savings percentage must be between 0 and 100",
		}}
	}
	a.autoSavings = percent
	return nil
}

func (a *BankAccount) ApplyDelta(delta decimal.Decimal) error {
	next := a.balance.Add(delta)
	if next.LessThan(a.creditLimit.Neg()) {
		return ErrInsufficientFunds{
			Requested:   delta.Neg(),
			Balance:     a.balance,
			CreditLimit: a.creditLimit,
		}
	}
	a.balance = next
	return nil
}

func (a *BankAccount) ApplySavingsDelta(delta decimal.Decimal) error {
	next := a.savings.Add(delta)
	if next.IsNegative() {
		return ErrInsufficientFunds{
			Requested: delta.Neg(),
			Balance:   a.savings,
		}
	}
	a.savings = next
	return nil
}

func (a *BankAccount) AppendTransaction(tx Transaction) {
	a.log = append(a.log, tx)
}

// Transactions returns a copy of the account's log.
func (a *BankAccount) Transactions() []Transaction {
	out := make([]Transaction, len(a.log))
	copy(out, a.log)
	return out
}
