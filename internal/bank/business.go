// internal/bank/business.go

package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BusinessAccount 允許透支：提款上限為 balance + overdraftLimit，
// 餘額最低可至 -overdraftLimit。這是唯一允許負餘額的帳戶類型。
type BusinessAccount struct {
	ledger
	overdraftLimit decimal.Decimal
}

func NewBusinessAccount(number int64, balance, overdraftLimit decimal.Decimal) (*BusinessAccount, error) {
	if err := validateLedger(number, balance); err != nil {
		return nil, err
	}
	if overdraftLimit.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOverdraftLimit, overdraftLimit)
	}
	return &BusinessAccount{
		ledger:         ledger{number: number, balance: balance},
		overdraftLimit: overdraftLimit,
	}, nil
}

func (a *BusinessAccount) Kind() Kind { return KindBusiness }

func (a *BusinessAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

func (a *BusinessAccount) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credit(amount)
}

func (a *BusinessAccount) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debit(amount, a.overdraftLimit)
}

func (a *BusinessAccount) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.header("Business") + "Overdraft Limit: " + a.overdraftLimit.String() + "\n"
}
