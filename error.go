package multibank

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInternalServer = errors.New("internal server error")
	ErrOverCapacity   = errors.New("service over capacity")
)

type ErrValidation struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrValidation) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

// LinkReason classifies registry contract violations.
type LinkReason string

const (
	ReasonSelfLink  LinkReason = "self_link"
	ReasonDuplicate LinkReason = "duplicate"
	ReasonNotFound  LinkReason = "not_found"
)

type ErrLinking struct {
	Reason   LinkReason `json:"reason"`
	Provider string     `json:"provider"`
}

func (e ErrLinking) Error() string {
	switch e.Reason {
	case ReasonSelfLink:
		return "cannot link an account to itself"
	case ReasonDuplicate:
		return fmt.Sprintf("an account from %q is already linked", e.Provider)
	default:
		return fmt.Sprintf("no linked account from %q", e.Provider)
	}
}

type ErrInsufficientFunds struct {
	Requested   decimal.Decimal `json:"requested"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: requested %s, balance %s, credit limit %s",
		e.Requested, e.Balance, e.CreditLimit)
}

// ErrTransfer reports a transfer that failed mid-flight. The source
// balance has already been restored by the time this surfaces.
type ErrTransfer struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Stage string `json:"stage"`
}

func (e ErrTransfer) Error() string {
	return fmt.Sprintf("transfer from %q to %q did not complete (failed at %s)", e.From, e.To, e.Stage)
}
