package multibank

import "github.com/shopspring/decimal"

type Config struct {
	Listen  string          `yaml:"listen"`
	Primary AccountConfig   `yaml:"primary"`
	Linked  []AccountConfig `yaml:"linked"`
	Limits  struct {
		Requests int64 `yaml:"requests"`
	} `yaml:"limits"`
}

// AccountConfig seeds one account. Amounts are decimal strings; yaml.v3
// has no text-unmarshal hook for decimal.Decimal so they are parsed
// explicitly.
type AccountConfig struct {
	Provider           string `yaml:"provider"`
	Name               string `yaml:"name"`
	Balance            string `yaml:"balance"`
	CreditLimit        string `yaml:"credit_limit"`
	AutoSavingsPercent string `yaml:"auto_savings_percent"`
}

// Build constructs the configured account.
func (c AccountConfig) Build() (*BankAccount, error) {
	balance, err := parseAmount(c.Balance, "balance")
	if err != nil {
		return nil, err
	}
	limit, err := parseAmount(c.CreditLimit, "credit_limit")
	if err != nil {
		return nil, err
	}
	acct, err := NewBankAccount(c.Provider, c.Name, balance, limit)
	if err != nil {
		return nil, err
	}
	if c.AutoSavingsPercent != "" {
		pct, err := parseAmount(c.AutoSavingsPercent, "auto_savings_percent")
		if err != nil {
			return nil, err
		}
		if err := acct.SetAutoSavingsRate(pct); err != nil {
			return nil, err
		}
	}
	return acct, nil
}

func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrValidation{Fields: map[string]string{field: "invalid decimal amount"}}
	}
	return d, nil
}
