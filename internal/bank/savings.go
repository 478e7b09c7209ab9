// internal/bank/savings.go

package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SavingsAccount 為一般儲蓄帳戶：存款無上限，提款不得超過餘額。
// 利率僅供顯示，不會自動計息。
type SavingsAccount struct {
	ledger
	interestRate decimal.Decimal
}

// NewSavingsAccount 驗證參數後建立儲蓄帳戶；任何驗證失敗都不會回傳部分初始化的帳戶。
func NewSavingsAccount(number int64, balance, interestRate decimal.Decimal) (*SavingsAccount, error) {
	if err := validateLedger(number, balance); err != nil {
		return nil, err
	}
	if err := validateSavings(interestRate); err != nil {
		return nil, err
	}
	return &SavingsAccount{
		ledger:       ledger{number: number, balance: balance},
		interestRate: interestRate,
	}, nil
}

func (a *SavingsAccount) Kind() Kind { return KindSavings }

func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.interestRate }

func (a *SavingsAccount) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credit(amount)
}

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debit(amount, decimal.Zero)
}

func (a *SavingsAccount) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.display()
}

func (a *SavingsAccount) display() string {
	return a.header("Savings") + "Interest Rate: " + percent(a.interestRate) + "\n"
}

// PremiumSavingsAccount 在儲蓄帳戶之上加上忠誠獎勵金。
// 獎勵金只在呼叫 AddLoyaltyBonus 時入帳。
type PremiumSavingsAccount struct {
	SavingsAccount
	loyaltyBonus decimal.Decimal
}

func NewPremiumSavingsAccount(number int64, balance, interestRate, loyaltyBonus decimal.Decimal) (*PremiumSavingsAccount, error) {
	if err := validateLedger(number, balance); err != nil {
		return nil, err
	}
	if err := validateSavings(interestRate); err != nil {
		return nil, err
	}
	if loyaltyBonus.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLoyaltyBonus, loyaltyBonus)
	}
	return &PremiumSavingsAccount{
		SavingsAccount: SavingsAccount{
			ledger:       ledger{number: number, balance: balance},
			interestRate: interestRate,
		},
		loyaltyBonus: loyaltyBonus,
	}, nil
}

func (a *PremiumSavingsAccount) Kind() Kind { return KindPremiumSavings }

func (a *PremiumSavingsAccount) LoyaltyBonus() decimal.Decimal { return a.loyaltyBonus }

// AddLoyaltyBonus 將獎勵金加入餘額，無其他前置條件。
func (a *PremiumSavingsAccount) AddLoyaltyBonus() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(a.loyaltyBonus)
	return nil
}

// Display 沿用儲蓄帳戶的內容，再附加獎勵金一行。
func (a *PremiumSavingsAccount) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var sb strings.Builder
	sb.WriteString(a.SavingsAccount.display())
	sb.WriteString("Loyalty Bonus: " + a.loyaltyBonus.String() + "\n")
	return sb.String()
}
