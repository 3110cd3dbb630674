package multibank

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

type statementSection struct {
	provider string
	name     string
	balance  decimal.Decimal
	savings  decimal.Decimal
	txs      []Transaction
}

// snapshotHistory copies the full transaction history of the primary
// account and every linked account under the lock. Rendering happens
// after the lock is released; no I/O runs inside the critical section.
func (r *Registry) snapshotHistory() []statementSection {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections := make([]statementSection, 0, len(r.order)+1)
	sections = append(sections, sectionOf(r.owner))
	for _, p := range r.order {
		sections = append(sections, sectionOf(r.linked[p]))
	}
	return sections
}

func sectionOf(acct Account) statementSection {
	return statementSection{
		provider: acct.Provider(),
		name:     acct.Name(),
		balance:  acct.Balance(),
		savings:  acct.Savings(),
		txs:      acct.Transactions(),
	}
}

// Statement writes a PDF statement of the full transaction history
// across the primary account and all linked accounts.
func (s *serviceImpl) Statement(w io.Writer) error {
	sections := s.registry.snapshotHistory()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Consolidated account statement")
	pdf.Ln(12)

	for _, sec := range sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("%s account (%s): balance %s, savings %s",
			sec.provider, sec.name, sec.balance, sec.savings))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		if len(sec.txs) == 0 {
			pdf.Cell(0, 6, "No transactions yet.")
			pdf.Ln(6)
		}
		for _, tx := range sec.txs {
			pdf.Cell(0, 6, fmt.Sprintf("[%s] %s %s %s (balance %s)",
				tx.Timestamp.Format("2006-01-02 15:04:05"),
				tx.Kind, tx.Amount, tx.Description, tx.ResultingBalance))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
