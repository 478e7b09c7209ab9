// Package bank 定義核心領域模型與業務規則。
// 本檔定義帳戶能力介面 (Account / Repayer / BonusEarner) 與所有帳戶共用的
// 帳號、餘額狀態，不含任何 HTTP 或輸出細節。

package bank

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Kind identifies an account variant.
type Kind int

const (
	KindSavings Kind = iota + 1
	KindPremiumSavings
	KindBusiness
	KindLoan
	KindHybrid
)

var kindNames = map[Kind]string{
	KindSavings:        "savings",
	KindPremiumSavings: "premium_savings",
	KindBusiness:       "business",
	KindLoan:           "loan",
	KindHybrid:         "hybrid",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind 由字串（不分大小寫）解析帳戶類型。
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown account kind %q", s)
}

// Account 為所有帳戶類型必須滿足的能力契約。
// 失敗的操作不會改變任何狀態。
type Account interface {
	Number() int64
	Balance() decimal.Decimal
	Kind() Kind
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	// Display 回傳帳戶欄位的可讀文字；輸出位置由呼叫端決定。
	Display() string
}

// Repayer 為具備貸款還款能力的帳戶（LoanAccount、HybridAccount）。
type Repayer interface {
	Account
	Repay(amount decimal.Decimal) error
	LoanAmount() decimal.Decimal
	LoanInterestRate() decimal.Decimal
	RepaidAmount() decimal.Decimal
	RemainingLoan() decimal.Decimal
}

// BonusEarner 為可手動加計忠誠獎勵金的帳戶（PremiumSavingsAccount）。
type BonusEarner interface {
	Account
	LoyaltyBonus() decimal.Decimal
	AddLoyaltyBonus() error
}

// AsRepayer 查詢帳戶是否具備還款能力。
func AsRepayer(a Account) (Repayer, bool) {
	r, ok := a.(Repayer)
	return r, ok
}

// AsBonusEarner 查詢帳戶是否可加計忠誠獎勵金。
func AsBonusEarner(a Account) (BonusEarner, bool) {
	b, ok := a.(BonusEarner)
	return b, ok
}

// ledger 保存帳號與餘額，是每個帳戶唯一的真實來源。
// mu 序列化同一帳戶的所有檢查與變更（check-then-act 在同一臨界區內）。
type ledger struct {
	mu      sync.Mutex
	number  int64
	balance decimal.Decimal
}

// validateLedger 為所有帳戶共用的建立驗證，須在指派任何狀態前執行。
func validateLedger(number int64, balance decimal.Decimal) error {
	if number <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAccountNumber, number)
	}
	if balance.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidBalance, balance)
	}
	return nil
}

func validateSavings(interestRate decimal.Decimal) error {
	if interestRate.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidInterestRate, interestRate)
	}
	return nil
}

func (l *ledger) Number() int64 { return l.number }

func (l *ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// credit 與 debit 需在持有 mu 的情況下呼叫。
func (l *ledger) credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidAmount)
	}
	l.balance = l.balance.Add(amount)
	return nil
}

// debit 允許提款至 balance + headroom；headroom 為 0 時餘額維持非負。
func (l *ledger) debit(amount, headroom decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be positive", ErrInvalidAmount)
	}
	if amount.GreaterThan(l.balance.Add(headroom)) {
		return fmt.Errorf("%w: %s exceeds available %s", ErrInvalidAmount, amount, l.balance.Add(headroom))
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

func (l *ledger) header(title string) string {
	return fmt.Sprintf("%s Account Number: %d\nBalance: %s\n", title, l.number, l.balance)
}

// percent 將利率以百分比呈現，例如 0.05 → "5%"。
func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}
