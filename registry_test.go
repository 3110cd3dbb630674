package multibank_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	multibank "github.com/mayowa-kalejaiye/multi-bank-integration"
	"github.com/mayowa-kalejaiye/multi-bank-integration/mocks"
)

func mustAccount(t *testing.T, provider, name string, balance, limit int64) *multibank.BankAccount {
	t.Helper()
	acct, err := multibank.NewBankAccount(provider, name, decimal.NewFromInt(balance), decimal.NewFromInt(limit))
	require.Nil(t, err)
	return acct
}

func newTestRegistry(t *testing.T, balance, limit int64) (*multibank.Registry, *multibank.BankAccount) {
	t.Helper()
	primary := mustAccount(t, "Default", "Primary", balance, limit)
	log := zerolog.Nop()
	reg, err := multibank.NewRegistry(primary, &log)
	require.Nil(t, err)
	return reg, primary
}

func TestLink(t *testing.T) {
	t.Run("links an external account once", func(tt *testing.T) {
		as := assert.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		palm := mustAccount(tt, "PalmPay", "Wallet", 500, 0)

		as.Nil(reg.Link(palm))
		got, err := reg.Lookup("PalmPay")
		as.Nil(err)
		as.Equal(multibank.Account(palm), got)
	})

	t.Run("second link of the same provider fails with duplicate and leaves one entry", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		reqrd.Nil(reg.Link(mustAccount(tt, "PalmPay", "Wallet", 500, 0)))

		err := reg.Link(mustAccount(tt, "PalmPay", "Another", 10, 0))
		errl := &multibank.ErrLinking{}
		as.ErrorAs(err, errl)
		as.Equal(multibank.ReasonDuplicate, errl.Reason)

		n := 0
		for range reg.Linked() {
			n++
		}
		as.Equal(1, n)
	})

	t.Run("linking the owner's provider fails with self_link", func(tt *testing.T) {
		as := assert.New(tt)
		reg, primary := newTestRegistry(tt, 2000, 0)

		err := reg.Link(primary)
		errl := &multibank.ErrLinking{}
		as.ErrorAs(err, errl)
		as.Equal(multibank.ReasonSelfLink, errl.Reason)

		err = reg.Link(mustAccount(tt, "Default", "Impostor", 1, 0))
		as.ErrorAs(err, errl)
		as.Equal(multibank.ReasonSelfLink, errl.Reason)
	})

	t.Run("empty provider fails validation", func(tt *testing.T) {
		as := assert.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		ctrl := gomock.NewController(tt)
		acct := mocks.NewMockAccount(ctrl)
		acct.EXPECT().Provider().Return("").AnyTimes()

		err := reg.Link(acct)
		errv := &multibank.ErrValidation{}
		as.ErrorAs(err, errv)
	})

	t.Run("concurrent links of one provider admit exactly one", func(tt *testing.T) {
		as := assert.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)

		const n = 16
		racers := make([]*multibank.BankAccount, n)
		for i := 0; i < n; i++ {
			racers[i] = mustAccount(tt, "PalmPay", fmt.Sprintf("Racer %d", i), 1, 0)
		}
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = reg.Link(racers[i])
			}(i)
		}
		wg.Wait()

		won := 0
		for _, err := range errs {
			if err == nil {
				won++
			}
		}
		as.Equal(1, won)
	})
}

func TestUnlink(t *testing.T) {
	t.Run("removes the entry and fails on a second unlink", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		reqrd.Nil(reg.Link(mustAccount(tt, "PalmPay", "Wallet", 500, 0)))

		_, err := reg.Unlink("PalmPay")
		as.Nil(err)

		_, err = reg.Unlink("PalmPay")
		errl := &multibank.ErrLinking{}
		as.ErrorAs(err, errl)
		as.Equal(multibank.ReasonNotFound, errl.Reason)
	})

	t.Run("unknown provider fails with not_found", func(tt *testing.T) {
		as := assert.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		_, err := reg.Unlink("NoSuchBank")
		errl := &multibank.ErrLinking{}
		as.ErrorAs(err, errl)
		as.Equal(multibank.ReasonNotFound, errl.Reason)
	})
}

func TestLinked(t *testing.T) {
	t.Run("yields a point-in-time snapshot in insertion order", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		reqrd.Nil(reg.Link(mustAccount(tt, "PalmPay", "Wallet", 500, 0)))
		reqrd.Nil(reg.Link(mustAccount(tt, "MoneyPoint", "Savings", 150, 0)))

		seq := reg.Linked()
		reqrd.Nil(reg.Link(mustAccount(tt, "Kuda", "Spare", 5, 0)))

		var providers []string
		for p := range seq {
			providers = append(providers, p)
		}
		as.Equal([]string{"PalmPay", "MoneyPoint"}, providers)

		// Restartable: a second pass yields the same snapshot.
		n := 0
		for range seq {
			n++
		}
		as.Equal(2, n)
	})
}

func TestTransfer(t *testing.T) {
	t.Run("moves funds and records both legs", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 2000, 0)
		palm := mustAccount(tt, "PalmPay", "Wallet", 500, 0)
		reqrd.Nil(reg.Link(palm))

		res, err := reg.Transfer("", "PalmPay", decimal.NewFromInt(300))
		reqrd.Nil(err)
		as.True(res.Success)
		as.True(res.SourceBalance.Equal(decimal.NewFromInt(1700)))
		as.True(res.DestBalance.Equal(decimal.NewFromInt(800)))
		as.True(primary.Balance().Equal(decimal.NewFromInt(1700)))
		as.True(palm.Balance().Equal(decimal.NewFromInt(800)))

		srcTxs := primary.Transactions()
		reqrd.Len(srcTxs, 1)
		as.Equal(multibank.KindTransferOut, srcTxs[0].Kind)
		as.True(srcTxs[0].ResultingBalance.Equal(decimal.NewFromInt(1700)))
		dstTxs := palm.Transactions()
		reqrd.Len(dstTxs, 1)
		as.Equal(multibank.KindTransferIn, dstTxs[0].Kind)
	})

	t.Run("unknown destination fails with not_found and changes nothing", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 1700, 0)
		palm := mustAccount(tt, "PalmPay", "Wallet", 800, 0)
		reqrd.Nil(reg.Link(palm))

		_, err := reg.Transfer("", "NoSuchBank", decimal.NewFromInt(50))
		errl := &multibank.ErrLinking{}
		as.ErrorAs(err, errl)
		as.Equal(multibank.ReasonNotFound, errl.Reason)
		as.True(primary.Balance().Equal(decimal.NewFromInt(1700)))
		as.True(palm.Balance().Equal(decimal.NewFromInt(800)))
	})

	t.Run("insufficient funds fails without mutation", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 1700, 0)
		palm := mustAccount(tt, "PalmPay", "Wallet", 800, 0)
		reqrd.Nil(reg.Link(palm))

		_, err := reg.Transfer("", "PalmPay", decimal.NewFromInt(5000))
		errf := &multibank.ErrInsufficientFunds{}
		as.ErrorAs(err, errf)
		as.True(primary.Balance().Equal(decimal.NewFromInt(1700)))
		as.True(palm.Balance().Equal(decimal.NewFromInt(800)))
		as.Empty(primary.Transactions())
	})

	t.Run("overdraft within the credit limit is allowed", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 100, 200)
		reqrd.Nil(reg.Link(mustAccount(tt, "PalmPay", "Wallet", 0, 0)))

		res, err := reg.Transfer("", "PalmPay", decimal.NewFromInt(300))
		reqrd.Nil(err)
		as.True(res.Success)
		as.True(primary.Balance().Equal(decimal.NewFromInt(-200)))
	})

	t.Run("zero and negative amounts are rejected, not treated as no-ops", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		reqrd.Nil(reg.Link(mustAccount(tt, "PalmPay", "Wallet", 500, 0)))

		errv := &multibank.ErrValidation{}
		_, err := reg.Transfer("", "PalmPay", decimal.Zero)
		as.ErrorAs(err, errv)
		_, err = reg.Transfer("", "PalmPay", decimal.NewFromInt(-5))
		as.ErrorAs(err, errv)
	})

	t.Run("linked account can be the source and the primary the destination", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 2000, 0)
		palm := mustAccount(tt, "PalmPay", "Wallet", 500, 0)
		reqrd.Nil(reg.Link(palm))

		res, err := reg.Transfer("PalmPay", "Default", decimal.NewFromInt(200))
		reqrd.Nil(err)
		as.True(res.Success)
		as.True(primary.Balance().Equal(decimal.NewFromInt(2200)))
		as.True(palm.Balance().Equal(decimal.NewFromInt(300)))
	})

	t.Run("transferring an account to itself is rejected", func(tt *testing.T) {
		as := assert.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		errv := &multibank.ErrValidation{}
		_, err := reg.Transfer("", "Default", decimal.NewFromInt(10))
		as.ErrorAs(err, errv)
	})
}

func TestTransferCompensation(t *testing.T) {
	t.Run("restores the source debit when the destination credit fails", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 2000, 0)

		ctrl := gomock.NewController(tt)
		flaky := mocks.NewMockAccount(ctrl)
		flaky.EXPECT().Provider().Return("FlakyBank").AnyTimes()
		flaky.EXPECT().Name().Return("Flaky").AnyTimes()
		flaky.EXPECT().Balance().Return(decimal.Zero).AnyTimes()
		flaky.EXPECT().Savings().Return(decimal.Zero).AnyTimes()
		flaky.EXPECT().ApplyDelta(gomock.Any()).Return(errors.New("credit refused")).AnyTimes()
		flaky.EXPECT().ApplySavingsDelta(gomock.Any()).Return(nil).AnyTimes()
		reqrd.Nil(reg.Link(flaky))

		_, err := reg.Transfer("", "FlakyBank", decimal.NewFromInt(300))
		errt := &multibank.ErrTransfer{}
		as.ErrorAs(err, errt)
		as.Equal("credit", errt.Stage)
		as.True(primary.Balance().Equal(decimal.NewFromInt(2000)))
		// The compensated transfer must not leave an outgoing record in
		// the source history.
		as.Empty(primary.Transactions())
	})
}

func TestConsolidated(t *testing.T) {
	t.Run("sums primary plus every linked account exactly once", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 2000, 0)
		reqrd.Nil(reg.Link(mustAccount(tt, "PalmPay", "Wallet", 500, 0)))
		reqrd.Nil(reg.Link(mustAccount(tt, "MoneyPoint", "Savings", 150, 0)))

		as.True(reg.ConsolidatedBalance().Equal(decimal.NewFromInt(2650)))
		as.True(reg.ConsolidatedSavings().Equal(decimal.Zero))
	})

	t.Run("savings sub-balances are included", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 0, 0)
		palm := mustAccount(tt, "PalmPay", "Wallet", 0, 0)
		reqrd.Nil(palm.ApplySavingsDelta(decimal.NewFromInt(40)))
		reqrd.Nil(reg.Link(palm))

		as.True(reg.ConsolidatedSavings().Equal(decimal.NewFromInt(40)))
	})
}

func TestDepositWithdraw(t *testing.T) {
	t.Run("deposit splits the auto-savings percentage", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 0, 0)

		res, err := reg.Deposit("", decimal.NewFromInt(100), "salary")
		reqrd.Nil(err)
		as.True(res.Success)
		// Default auto-savings rate is 5 percent.
		as.True(primary.Balance().Equal(decimal.NewFromInt(95)))
		as.True(primary.Savings().Equal(decimal.NewFromInt(5)))
		reqrd.Len(primary.Transactions(), 1)
		as.Equal(multibank.KindDeposit, primary.Transactions()[0].Kind)
	})

	t.Run("withdraw honors the overdraft limit", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 100, 50)

		res, err := reg.Withdraw("", decimal.NewFromInt(150), "rent")
		reqrd.Nil(err)
		as.True(res.Success)
		as.True(primary.Balance().Equal(decimal.NewFromInt(-50)))

		_, err = reg.Withdraw("", decimal.NewFromInt(1), "over")
		errf := &multibank.ErrInsufficientFunds{}
		as.ErrorAs(err, errf)
		as.True(primary.Balance().Equal(decimal.NewFromInt(-50)))
	})

	t.Run("maintenance fee debits the flat amount", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, primary := newTestRegistry(tt, 100, 0)

		res, err := reg.DeductMaintenanceFee("")
		reqrd.Nil(err)
		as.True(res.Success)
		as.True(primary.Balance().Equal(decimal.NewFromInt(95)))
		reqrd.Len(primary.Transactions(), 1)
		as.Equal(multibank.KindFee, primary.Transactions()[0].Kind)
	})

	t.Run("fee is refused when it would breach the credit limit", func(tt *testing.T) {
		as := assert.New(tt)
		reg, primary := newTestRegistry(tt, 2, 0)

		_, err := reg.DeductMaintenanceFee("")
		errf := &multibank.ErrInsufficientFunds{}
		as.ErrorAs(err, errf)
		as.True(primary.Balance().Equal(decimal.NewFromInt(2)))
		as.Empty(primary.Transactions())
	})
}

func TestConcurrentTransfers(t *testing.T) {
	t.Run("disjoint pairs preserve conservation and match sequential totals", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		reg, _ := newTestRegistry(tt, 1000, 0)

		const pairs = 8
		srcs := make([]*multibank.BankAccount, pairs)
		dsts := make([]*multibank.BankAccount, pairs)
		for i := 0; i < pairs; i++ {
			srcs[i] = mustAccount(tt, fmt.Sprintf("Src%d", i), "src", 1000, 0)
			dsts[i] = mustAccount(tt, fmt.Sprintf("Dst%d", i), "dst", 100, 0)
			reqrd.Nil(reg.Link(srcs[i]))
			reqrd.Nil(reg.Link(dsts[i]))
		}
		before := reg.ConsolidatedBalance()

		var wg sync.WaitGroup
		for i := 0; i < pairs; i++ {
			for j := 0; j < 10; j++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, err := reg.Transfer(fmt.Sprintf("Src%d", i), fmt.Sprintf("Dst%d", i), decimal.NewFromInt(7))
					as.Nil(err)
				}(i)
			}
		}
		wg.Wait()

		for i := 0; i < pairs; i++ {
			as.True(srcs[i].Balance().Equal(decimal.NewFromInt(1000-70)), "source %d", i)
			as.True(dsts[i].Balance().Equal(decimal.NewFromInt(100+70)), "destination %d", i)
			pair := srcs[i].Balance().Add(dsts[i].Balance())
			as.True(pair.Equal(decimal.NewFromInt(1100)), "pair %d conservation", i)
		}
		as.True(reg.ConsolidatedBalance().Equal(before))
	})
}
