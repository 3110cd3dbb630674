package multibank_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	multibank "github.com/mayowa-kalejaiye/multi-bank-integration"
)

func TestGuard(t *testing.T) {
	t.Run("leaves the result standing on success", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		acct, err := multibank.NewBankAccount("PalmPay", "Wallet", decimal.NewFromInt(100), decimal.Zero)
		reqrd.Nil(err)

		err = multibank.Guard(acct, func() error {
			return acct.ApplyDelta(decimal.NewFromInt(50))
		})
		as.Nil(err)
		as.True(acct.Balance().Equal(decimal.NewFromInt(150)))
	})

	t.Run("restores balance and savings exactly on failure", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		acct, err := multibank.NewBankAccount("PalmPay", "Wallet", decimal.NewFromInt(100), decimal.Zero)
		reqrd.Nil(err)
		reqrd.Nil(acct.ApplySavingsDelta(decimal.NewFromInt(20)))

		boom := errors.New("collaborator failed")
		err = multibank.Guard(acct, func() error {
			if err := acct.ApplyDelta(decimal.NewFromInt(-60)); err != nil {
				return err
			}
			if err := acct.ApplySavingsDelta(decimal.NewFromInt(-5)); err != nil {
				return err
			}
			return boom
		})
		as.ErrorIs(err, boom)
		as.True(acct.Balance().Equal(decimal.NewFromInt(100)))
		as.True(acct.Savings().Equal(decimal.NewFromInt(20)))
	})

	t.Run("does not undo appended records", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		acct, err := multibank.NewBankAccount("PalmPay", "Wallet", decimal.NewFromInt(100), decimal.Zero)
		reqrd.Nil(err)

		err = multibank.Guard(acct, func() error {
			acct.AppendTransaction(multibank.Transaction{Kind: multibank.KindDeposit, Amount: decimal.NewFromInt(1)})
			return errors.New("after append")
		})
		as.NotNil(err)
		// Money state restored, dependent state untouched. Callers own
		// the ordering of fallible writes against log appends.
		as.True(acct.Balance().Equal(decimal.NewFromInt(100)))
		as.Len(acct.Transactions(), 1)
	})
}
