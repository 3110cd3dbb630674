package multibank

import (
	"io"

	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

var (
	_ Service = (*validationMiddleware)(nil)
)

// validationMiddleware rejects malformed requests before they reach the
// registry: non-positive amounts, empty providers, self-transfers.
// Business-rule outcomes (not found, duplicate, insufficient funds) are
// left to the core.
type validationMiddleware struct {
	next Service
}

func NewValidationMiddleware() Middleware {
	return func(next Service) Service {
		return &validationMiddleware{next: next}
	}
}

func (v *validationMiddleware) LinkAccount(req LinkReq) (*AccountSummary, error) {
	fields := map[string]string{}
	if req.Provider == "" {
		fields["provider"] = "must not be empty"
	}
	if req.Name == "" {
		fields["name"] = "must not be empty"
	}
	if req.Balance.IsNegative() {
		fields["balance"] = "opening balance cannot be negative"
	}
	if req.CreditLimit.IsNegative() {
		fields["credit_limit"] = "credit limit cannot be negative"
	}
	if len(fields) > 0 {
		return nil, ErrValidation{Fields: fields}
	}
	return v.next.LinkAccount(req)
}

func (v *validationMiddleware) UnlinkAccount(provider string) error {
	if provider == "" {
		return ErrValidation{Fields: map[string]string{"provider": "must not be empty"}}
	}
	return v.next.UnlinkAccount(provider)
}

func (v *validationMiddleware) Lookup(provider string) (*AccountSummary, error) {
	if provider == "" {
		return nil, ErrValidation{Fields: map[string]string{"provider": "must not be empty"}}
	}
	return v.next.Lookup(provider)
}

func (v *validationMiddleware) LinkedAccounts() []AccountSummary {
	return v.next.LinkedAccounts()
}

func (v *validationMiddleware) Transfer(req TransferReq) (*TransferResult, error) {
	fields := map[string]string{}
	if !req.Amount.IsPositive() {
		fields["amount"] = "must be greater than zero"
	}
	if req.To == "" {
		fields["to"] = "must not be empty"
	}
	if req.From == req.To {
		fields["to"] = "source and destination are the same account"
	}
	if len(fields) > 0 {
		return nil, ErrValidation{Fields: fields}
	}
	return v.next.Transfer(req)
}

func (v *validationMiddleware) Deposit(req ChargeReq) (*TransactionResult, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrValidation{Fields: map[string]string{"amount": "must be greater than zero"}}
	}
	return v.next.Deposit(req)
}

func (v *validationMiddleware) Withdraw(req ChargeReq) (*TransactionResult, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrValidation{Fields: map[string]string{"amount": "must be greater than zero"}}
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Consolidated() (*ConsolidatedView, error) {
	return v.next.Consolidated()
}

func (v *validationMiddleware) Statement(w io.Writer) error {
	return v.next.Statement(w)
}

//
// Load-shedding middleware
//

// ServiceLimits caps in-flight requests per operation with weighted
// semaphores. Limits are static; tune per deployment.
type ServiceLimits struct {
	Link      *semaphore.Weighted
	Transfer  *semaphore.Weighted
	Charge    *semaphore.Weighted
	Read      *semaphore.Weighted
	Statement *semaphore.Weighted
}

// NewServiceLimits builds limits with n slots for every operation
// class.
func NewServiceLimits(n int64) *ServiceLimits {
	return &ServiceLimits{
		Link:      semaphore.NewWeighted(n),
		Transfer:  semaphore.NewWeighted(n),
		Charge:    semaphore.NewWeighted(n),
		Read:      semaphore.NewWeighted(n),
		Statement: semaphore.NewWeighted(n),
	}
}

// limitMiddleware sheds load instead of queueing it: when an
// operation's semaphore has no free slot the call fails immediately
// with ErrOverCapacity rather than blocking a goroutine.
type limitMiddleware struct {
	next   Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:   next,
			limits: limits,
		}
	}
}

func (l *limitMiddleware) LinkAccount(req LinkReq) (*AccountSummary, error) {
	if !l.limits.Link.TryAcquire(1) {
		return nil, ErrOverCapacity
	}
	defer l.limits.Link.Release(1)
	return l.next.LinkAccount(req)
}

func (l *limitMiddleware) UnlinkAccount(provider string) error {
	if !l.limits.Link.TryAcquire(1) {
		return ErrOverCapacity
	}
	defer l.limits.Link.Release(1)
	return l.next.UnlinkAccount(provider)
}

func (l *limitMiddleware) Lookup(provider string) (*AccountSummary, error) {
	if !l.limits.Read.TryAcquire(1) {
		return nil, ErrOverCapacity
	}
	defer l.limits.Read.Release(1)
	return l.next.Lookup(provider)
}

// LinkedAccounts has no error channel to report shedding through, so
// it is not limited.
func (l *limitMiddleware) LinkedAccounts() []AccountSummary {
	return l.next.LinkedAccounts()
}

func (l *limitMiddleware) Transfer(req TransferReq) (*TransferResult, error) {
	if !l.limits.Transfer.TryAcquire(1) {
		return nil, ErrOverCapacity
	}
	defer l.limits.Transfer.Release(1)
	return l.next.Transfer(req)
}

func (l *limitMiddleware) Deposit(req ChargeReq) (*TransactionResult, error) {
	if !l.limits.Charge.TryAcquire(1) {
		return nil, ErrOverCapacity
	}
	defer l.limits.Charge.Release(1)
	return l.next.Deposit(req)
}

func (l *limitMiddleware) Withdraw(req ChargeReq) (*TransactionResult, error) {
	if !l.limits.Charge.TryAcquire(1) {
		return nil, ErrOverCapacity
	}
	defer l.limits.Charge.Release(1)
	return l.next.Withdraw(req)
}

func (l *limitMiddleware) Consolidated() (*ConsolidatedView, error) {
	if !l.limits.Read.TryAcquire(1) {
		return nil, ErrOverCapacity
	}
	defer l.limits.Read.Release(1)
	return l.next.Consolidated()
}

func (l *limitMiddleware) Statement(w io.Writer) error {
	if !l.limits.Statement.TryAcquire(1) {
		return ErrOverCapacity
	}
	defer l.limits.Statement.Release(1)
	return l.next.Statement(w)
}
