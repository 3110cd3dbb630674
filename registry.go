package multibank

import (
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Registry is the linking table owned by one primary account: a mapping
// from provider name to linked external account. A single registry-wide
// mutex serializes every linking, transfer, and consolidated-view
// operation. There are deliberately no per-account locks; two
// simultaneous transfers would otherwise need two account locks in
// opposite orders and could deadlock.
type Registry struct {
	mu     sync.Mutex
	owner  Account
	linked map[string]Account
	order  []string
	log    *zerolog.Logger
}

func NewRegistry(owner Account, log *zerolog.Logger) (*Registry, error) {
	if owner == nil {
		return nil, ErrValidation{Fields: map[string]string{"owner": "primary account is required"}}
	}
	if owner.Provider() == "" {
		return nil, ErrValidation{Fields: map[string]string{"provider": "primary account needs a provider"}}
	}
	return &Registry{
		owner:  owner,
		linked: make(map[string]Account),
		log:    log,
	}, nil
}

// Owner returns the primary account the registry belongs to.
func (r *Registry) Owner() Account { return r.owner }

// Link registers an external account under its provider name. Linking
// the owner to itself or a provider that is already present fails; both
// checks happen atomically under the lock so two concurrent links of
// the same provider cannot both observe "not present".
func (r *Registry) Link(acct Account) error {
	if acct == nil {
		return ErrValidation{Fields: map[string]string{"account": "account is required"}}
	}
	provider := acct.Provider()
	if provider == "" {
		return ErrValidation{Fields: map[string]string{"provider": "must not be empty"}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if acct == r.owner || provider == r.owner.Provider() {
		return ErrLinking{Reason: ReasonSelfLink, Provider: provider}
	}
	if _, ok := r.linked[provider]; ok {
		return ErrLinking{Reason: ReasonDuplicate, Provider: provider}
	}
	r.linked[provider] = acct
	r.order = append(r.order, provider)

	r.log.Info().
		Str("provider", provider).
		Str("name", acct.Name()).
		Msg("account linked")
	return nil
}

// Unlink removes the entry for provider. A second unlink of the same
// provider fails with not_found; removal is not idempotent.
func (r *Registry) Unlink(provider string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.linked[provider]
	if !ok {
		return nil, ErrLinking{Reason: ReasonNotFound, Provider: provider}
	}
	delete(r.linked, provider)
	if i := slices.Index(r.order, provider); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	r.log.Info().
		Str("provider", provider).
		Str("name", acct.Name()).
		Msg("account unlinked")
	return acct, nil
}

// Lookup returns the linked account for provider.
func (r *Registry) Lookup(provider string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.linked[provider]
	if !ok {
		return nil, ErrLinking{Reason: ReasonNotFound, Provider: provider}
	}
	return acct, nil
}

// Linked yields the (provider, account) pairs present when Linked was
// called, in insertion order. The copy is taken under the lock and the
// lock released before iteration, so links and unlinks that happen
// while the caller is ranging are not reflected. The sequence is
// restartable.
func (r *Registry) Linked() iter.Seq2[string, Account] {
	r.mu.Lock()
	providers := slices.Clone(r.order)
	accts := make([]Account, len(providers))
	for i, p := range providers {
		accts[i] = r.linked[p]
	}
	r.mu.Unlock()

	return func(yield func(string, Account) bool) {
		for i, p := range providers {
			if !yield(p, accts[i]) {
				return
			}
		}
	}
}

// Summary returns the point-in-time projection of the account linked
// under provider. The balance and savings reads happen under the lock;
// handing out anything hotter would race with concurrent transfers.
func (r *Registry) Summary(provider string) (*AccountSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.linked[provider]
	if !ok {
		return nil, ErrLinking{Reason: ReasonNotFound, Provider: provider}
	}
	s := summaryOf(acct)
	return &s, nil
}

// LinkedSummaries snapshots the projection of every linked account
// under the lock, in insertion order.
func (r *Registry) LinkedSummaries() []AccountSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]AccountSummary, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, summaryOf(r.linked[p]))
	}
	return out
}

func summaryOf(acct Account) AccountSummary {
	return AccountSummary{
		Provider: acct.Provider(),
		Name:     acct.Name(),
		Balance:  acct.Balance(),
		Savings:  acct.Savings(),
	}
}

// resolve maps a provider string to an account. The empty string and
// the owner's own provider both resolve to the primary account. Callers
// must hold r.mu.
func (r *Registry) resolve(provider string) (Account, error) {
	if provider == "" || provider == r.owner.Provider() {
		return r.owner, nil
	}
	acct, ok := r.linked[provider]
	if !ok {
		return nil, ErrLinking{Reason: ReasonNotFound, Provider: provider}
	}
	return acct, nil
}

// Transfer moves amount from one registry account to another as a
// single logical unit. The registry lock is held for the whole
// operation: an interleaved transfer or link/unlink can never observe
// the source debited but the destination not yet credited. On any
// failure the total of all balances is unchanged from before the call.
func (r *Registry) Transfer(from, to string, amount decimal.Decimal) (*TransferResult, error) {
	if !amount.IsPositive() {
		return nil, ErrValidation{Fields: map[string]string{"amount": "must be greater than zero"}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	src, err := r.resolve(from)
	if err != nil {
		return nil, err
	}
	dst, err := r.resolve(to)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return nil, ErrValidation{Fields: map[string]string{"to": "source and destination are the same account"}}
	}

	// Check-then-act inside the one critical section; no other
	// goroutine can move the balance between the check and the debit.
	if src.Balance().Sub(amount).LessThan(src.CreditLimit().Neg()) {
		return nil, ErrInsufficientFunds{
			Requested:   amount,
			Balance:     src.Balance(),
			CreditLimit: src.CreditLimit(),
		}
	}

	preDebit := src.Balance()
	if err := src.ApplyDelta(amount.Neg()); err != nil {
		// Nothing credited yet, nothing to compensate.
		return nil, err
	}

	if err := dst.ApplyDelta(amount); err != nil {
		// The two single-account mutations are not atomic with each
		// other; compensate the already-applied debit before
		// surfacing, so the books are never left imbalanced.
		if cerr := src.ApplyDelta(preDebit.Sub(src.Balance())); cerr != nil {
			r.log.Err(cerr).
				Str("from", src.Provider()).
				Str("to", dst.Provider()).
				Msg("source restore failed after credit failure")
		}
		r.log.Err(err).
			Str("from", src.Provider()).
			Str("to", dst.Provider()).
			Msg("destination credit failed, source debit compensated")
		return nil, ErrTransfer{From: src.Provider(), To: dst.Provider(), Stage: "credit"}
	}

	// Both legs applied; only now does the transfer enter either
	// history, so a compensated failure leaves no stale record behind.
	src.AppendTransaction(newTransaction(
		KindTransferOut, amount,
		fmt.Sprintf("Transferred to %s account", dst.Provider()),
		src.Provider(), src.Balance(),
	))
	dst.AppendTransaction(newTransaction(
		KindTransferIn, amount,
		fmt.Sprintf("Received from %s account", src.Provider()),
		dst.Provider(), dst.Balance(),
	))

	r.log.Info().
		Str("from", src.Provider()).
		Str("to", dst.Provider()).
		Str("amount", amount.String()).
		Msg("transfer completed")

	return &TransferResult{
		Success:        true,
		Message:        fmt.Sprintf("Transferred %s to %s account", amount, dst.Provider()),
		Amount:         amount,
		SourceProvider: src.Provider(),
		DestProvider:   dst.Provider(),
		SourceBalance:  src.Balance(),
		DestBalance:    dst.Balance(),
	}, nil
}

// Deposit credits amount to the account registered under provider (or
// the primary account when provider is empty), splitting the account's
// auto-savings percentage into its savings sub-balance.
func (r *Registry) Deposit(provider string, amount decimal.Decimal, description string) (*TransactionResult, error) {
	if !amount.IsPositive() {
		return nil, ErrValidation{Fields: map[string]string{"amount": "must be greater than zero"}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	acct, err := r.resolve(provider)
	if err != nil {
		return nil, err
	}

	saved := amount.Mul(acct.AutoSavingsRate()).Div(oneHundred)
	err = Guard(acct, func() error {
		if err := acct.ApplyDelta(amount.Sub(saved)); err != nil {
			return err
		}
		if err := acct.ApplySavingsDelta(saved); err != nil {
			return err
		}
		acct.AppendTransaction(newTransaction(
			KindDeposit, amount,
			fmt.Sprintf("%s | Auto-saved %s", description, saved),
			acct.Provider(), acct.Balance(),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransactionResult{
		Success:    true,
		Message:    fmt.Sprintf("Deposited %s. Auto-saved: %s", amount, saved),
		Amount:     amount,
		NewBalance: acct.Balance(),
		NewSavings: acct.Savings(),
		Timestamp:  time.Now(),
	}, nil
}

// Withdraw debits amount from the account registered under provider.
// The balance may go negative down to the account's credit limit.
func (r *Registry) Withdraw(provider string, amount decimal.Decimal, description string) (*TransactionResult, error) {
	if !amount.IsPositive() {
		return nil, ErrValidation{Fields: map[string]string{"amount": "must be greater than zero"}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	acct, err := r.resolve(provider)
	if err != nil {
		return nil, err
	}

	err = Guard(acct, func() error {
		if err := acct.ApplyDelta(amount.Neg()); err != nil {
			return err
		}
		acct.AppendTransaction(newTransaction(
			KindWithdrawal, amount, description, acct.Provider(), acct.Balance(),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransactionResult{
		Success:    true,
		Message:    fmt.Sprintf("Withdrew %s. New balance: %s", amount, acct.Balance()),
		Amount:     amount,
		NewBalance: acct.Balance(),
		NewSavings: acct.Savings(),
		Timestamp:  time.Now(),
	}, nil
}

// DeductMaintenanceFee charges the flat monthly fee against the account
// registered under provider.
func (r *Registry) DeductMaintenanceFee(provider string) (*TransactionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, err := r.resolve(provider)
	if err != nil {
		return nil, err
	}

	err = Guard(acct, func() error {
		if err := acct.ApplyDelta(maintenanceFee.Neg()); err != nil {
			return err
		}
		acct.AppendTransaction(newTransaction(
			KindFee, maintenanceFee, "Maintenance fee deducted", acct.Provider(), acct.Balance(),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransactionResult{
		Success:    true,
		Message:    fmt.Sprintf("Maintenance fee deducted: %s", maintenanceFee),
		Amount:     maintenanceFee,
		NewBalance: acct.Balance(),
		NewSavings: acct.Savings(),
		Timestamp:  time.Now(),
	}, nil
}

// ConsolidatedBalance sums the balance of the primary account and every
// linked account. The total is a point-in-time snapshot taken under the
// lock; registry uniqueness guarantees no account is summed twice.
func (r *Registry) ConsolidatedBalance() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.owner.Balance()
	for _, p := range r.order {
		total = total.Add(r.linked[p].Balance())
	}
	return total
}

// ConsolidatedSavings sums the savings sub-balance of the primary
// account and every linked account.
func (r *Registry) ConsolidatedSavings() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.owner.Savings()
	for _, p := range r.order {
		total = total.Add(r.linked[p].Savings())
	}
	return total
}
