package multibank

// Guard runs op against acct with snapshot-and-restore semantics: the
// balance and savings captured before op runs are restored exactly when
// op returns an error, and stand untouched when it succeeds. The guard
// restores money state only; it does not undo other side effects such
// as appended transaction records. Callers must order their mutations
// so the log append happens after the last fallible balance write, or
// compensate dependent state themselves.
func Guard(acct Account, op func() error) error {
	prevBalance := acct.Balance()
	prevSavings := acct.Savings()
	if err := op(); err != nil {
		// Restoring to a previously held state cannot violate the
		// credit limit or drive savings negative.
		_ = acct.ApplyDelta(prevBalance.Sub(acct.Balance()))
		_ = acct.ApplySavingsDelta(prevSavings.Sub(acct.Savings()))
		return err
	}
	return nil
}
