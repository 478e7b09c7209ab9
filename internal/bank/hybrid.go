// internal/bank/hybrid.go

package bank

import (
	"strings"

	"github.com/shopspring/decimal"
)

// HybridAccount 在同一組帳號與餘額上組合儲蓄面向（存提款）與貸款面向（還款）。
// 兩個面向共用 ledger，不各自保存帳號或餘額。
type HybridAccount struct {
	ledger
	savingsRate decimal.Decimal
	loan        loanTerms
}

func NewHybridAccount(number int64, balance, savingsRate, loanAmount, loanRate decimal.Decimal) (*HybridAccount, error) {
	if err := validateLedger(number, balance); err != nil {
		return nil, err
	}
	if err := validateSavings(savingsRate); err != nil {
		return nil, err
	}
	if err := validateLoan(loanAmount, loanRate); err != nil {
		return nil, err
	}
	return &HybridAccount{
		ledger:      ledger{number: number, balance: balance},
		savingsRate: savingsRate,
		loan:        loanTerms{amount: loanAmount, interestRate: loanRate, repaid: decimal.Zero},
	}, nil
}

func (a *HybridAccount) Kind() Kind { return KindHybrid }

func (a *HybridAccount) InterestRate() decimal.Decimal { return a.savingsRate }

func (a *HybridAccount) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credit(amount)
}

func (a *HybridAccount) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debit(amount, decimal.Zero)
}

// Repay 套用貸款面向的規則；餘額受儲蓄面向約束，不得低於 0。
func (a *HybridAccount) Repay(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.repay(&a.ledger, amount, true)
}

func (a *HybridAccount) LoanAmount() decimal.Decimal { return a.loan.amount }

func (a *HybridAccount) LoanInterestRate() decimal.Decimal { return a.loan.interestRate }

func (a *HybridAccount) RepaidAmount() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.repaid
}

func (a *HybridAccount) RemainingLoan() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.remaining()
}

func (a *HybridAccount) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var sb strings.Builder
	sb.WriteString(a.header("Hybrid"))
	sb.WriteString("Savings Interest Rate: " + percent(a.savingsRate) + "\n")
	a.loan.display(&sb, "Loan Interest Rate")
	return sb.String()
}
