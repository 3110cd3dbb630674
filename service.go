package multibank

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type LinkReq struct {
	Provider    string          `json:"provider"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

type ChargeReq struct {
	Provider    string          `json:"provider"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type TransferReq struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// AccountSummary is the read-only projection of a linked account.
type AccountSummary struct {
	Provider string          `json:"provider"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Savings  decimal.Decimal `json:"savings"`
}

// ConsolidatedView is the point-in-time aggregate over the primary
// account and all linked accounts.
type ConsolidatedView struct {
	Balance decimal.Decimal `json:"balance"`
	Savings decimal.Decimal `json:"savings"`
}

// Service is the account-facing API over one primary account and its
// registry of linked external accounts.
type Service interface {
	LinkAccount(LinkReq) (*AccountSummary, error)
	UnlinkAccount(provider string) error
	Lookup(provider string) (*AccountSummary, error)
	LinkedAccounts() []AccountSummary
	Transfer(TransferReq) (*TransferResult, error)
	Deposit(ChargeReq) (*TransactionResult, error)
	Withdraw(ChargeReq) (*TransactionResult, error)
	Consolidated() (*ConsolidatedView, error)
	Statement(io.Writer) error
}

func NewService(primary *BankAccount, log *zerolog.Logger) (*serviceImpl, error) {
	if primary == nil {
		return nil, ErrValidation{Fields: map[string]string{"primary": "primary account is required"}}
	}
	reg, err := NewRegistry(primary, log)
	if err != nil {
		return nil, err
	}
	return &serviceImpl{
		registry: reg,
		log:      log,
	}, nil
}

type serviceImpl struct {
	registry *Registry
	log      *zerolog.Logger
}

// Registry exposes the underlying linking table, mainly for seeding
// pre-built accounts at startup.
func (s *serviceImpl) Registry() *Registry { return s.registry }

var (
	_ Service = (*serviceImpl)(nil)
)

func (s *serviceImpl) LinkAccount(req LinkReq) (*AccountSummary, error) {
	acct, err := NewBankAccount(req.Provider, req.Name, req.Balance, req.CreditLimit)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Link(acct); err != nil {
		return nil, err
	}
	// Built from the request, not read back from the account: once Link
	// returns, the account is reachable by concurrent transfers and its
	// fields may only be read under the registry lock.
	return &AccountSummary{
		Provider: req.Provider,
		Name:     req.Name,
		Balance:  req.Balance,
	}, nil
}

func (s *serviceImpl) UnlinkAccount(provider string) error {
	_, err := s.registry.Unlink(provider)
	return err
}

func (s *serviceImpl) Lookup(provider string) (*AccountSummary, error) {
	return s.registry.Summary(provider)
}

func (s *serviceImpl) LinkedAccounts() []AccountSummary {
	return s.registry.LinkedSummaries()
}

func (s *serviceImpl) Transfer(req TransferReq) (*TransferResult, error) {
	return s.registry.Transfer(req.From, req.To, req.Amount)
}

func (s *serviceImpl) Deposit(req ChargeReq) (*TransactionResult, error) {
	return s.registry.Deposit(req.Provider, req.Amount, req.Description)
}

func (s *serviceImpl) Withdraw(req ChargeReq) (*TransactionResult, error) {
	return s.registry.Withdraw(req.Provider, req.Amount, req.Description)
}

func (s *serviceImpl) Consolidated() (*ConsolidatedView, error) {
	return &ConsolidatedView{
		Balance: s.registry.ConsolidatedBalance(),
		Savings: s.registry.ConsolidatedSavings(),
	}, nil
}
