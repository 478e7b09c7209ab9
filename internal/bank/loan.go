// internal/bank/loan.go

package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// loanTerms 為貸款面向（facet）的狀態：本金、利率與累計還款。
// repaid 只增不減，且恆 <= amount。
type loanTerms struct {
	amount       decimal.Decimal
	interestRate decimal.Decimal
	repaid       decimal.Decimal
}

func validateLoan(amount, interestRate decimal.Decimal) error {
	if !amount.IsPositive() || interestRate.IsNegative() {
		return fmt.Errorf("%w: amount=%s rate=%s", ErrInvalidLoanTerms, amount, interestRate)
	}
	return nil
}

func (t *loanTerms) remaining() decimal.Decimal {
	return t.amount.Sub(t.repaid)
}

// repay 於持有 l.mu 時呼叫。同時增加 repaid 並自 l.balance 扣除還款。
// keepNonNegative 為 true 時，還款不得使餘額低於 0。
func (t *loanTerms) repay(l *ledger, amount decimal.Decimal, keepNonNegative bool) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRepayment)
	}
	if amount.GreaterThan(t.remaining()) {
		return fmt.Errorf("%w: %s exceeds remaining loan %s", ErrInvalidRepayment, amount, t.remaining())
	}
	if keepNonNegative && amount.GreaterThan(l.balance) {
		return fmt.Errorf("%w: %s exceeds balance %s", ErrInvalidRepayment, amount, l.balance)
	}
	t.repaid = t.repaid.Add(amount)
	l.balance = l.balance.Sub(amount)
	return nil
}

func (t *loanTerms) display(sb *strings.Builder, rateLabel string) {
	sb.WriteString("Loan Amount: " + t.amount.String() + "\n")
	sb.WriteString(rateLabel + ": " + percent(t.interestRate) + "\n")
	sb.WriteString("Repaid Amount: " + t.repaid.String() + "\n")
}

// LoanAccount 只能透過 Repay 變動餘額；Deposit 與 Withdraw 一律拒絕。
// 餘額代表未償義務而非可用資金，因此還款可使其低於 0。
type LoanAccount struct {
	ledger
	loan loanTerms
}

func NewLoanAccount(number int64, balance, loanAmount, interestRate decimal.Decimal) (*LoanAccount, error) {
	if err := validateLedger(number, balance); err != nil {
		return nil, err
	}
	if err := validateLoan(loanAmount, interestRate); err != nil {
		return nil, err
	}
	return &LoanAccount{
		ledger: ledger{number: number, balance: balance},
		loan:   loanTerms{amount: loanAmount, interestRate: interestRate, repaid: decimal.Zero},
	}, nil
}

func (a *LoanAccount) Kind() Kind { return KindLoan }

func (a *LoanAccount) Deposit(decimal.Decimal) error {
	return fmt.Errorf("%w: deposit is not allowed for loan account", ErrOperationNotSupported)
}

func (a *LoanAccount) Withdraw(decimal.Decimal) error {
	return fmt.Errorf("%w: withdrawal is not allowed for loan account", ErrOperationNotSupported)
}

func (a *LoanAccount) Repay(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.repay(&a.ledger, amount, false)
}

func (a *LoanAccount) LoanAmount() decimal.Decimal { return a.loan.amount }

func (a *LoanAccount) LoanInterestRate() decimal.Decimal { return a.loan.interestRate }

func (a *LoanAccount) RepaidAmount() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.repaid
}

func (a *LoanAccount) RemainingLoan() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loan.remaining()
}

func (a *LoanAccount) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var sb strings.Builder
	sb.WriteString(a.header("Loan"))
	a.loan.display(&sb, "Interest Rate")
	return sb.String()
}
