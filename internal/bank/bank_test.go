// internal/bank/bank_test.go
//
// 本檔為帳戶類型的單元測試。
// 覆蓋建立驗證、存提款上限、透支、還款、組合帳戶、顯示內容與併發存款。
// 所有測試皆為 in-memory 執行，不依賴外部服務。

package bank

import (
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d 為小工具：以字串建立 decimal，格式錯誤時直接 panic（僅限測試常數）。
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertBalance(t *testing.T, a Account, want string) {
	t.Helper()
	assert.Truef(t, a.Balance().Equal(d(want)), "balance=%s want=%s", a.Balance(), want)
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Account, error)
		want  error
	}{
		{"savings zero number", func() (Account, error) { return NewSavingsAccount(0, d("1"), d("0.05")) }, ErrInvalidAccountNumber},
		{"savings negative balance", func() (Account, error) { return NewSavingsAccount(1, d("-1"), d("0.05")) }, ErrInvalidBalance},
		{"savings negative rate", func() (Account, error) { return NewSavingsAccount(1, d("1"), d("-0.01")) }, ErrInvalidInterestRate},
		{"premium negative bonus", func() (Account, error) { return NewPremiumSavingsAccount(1, d("1"), d("0.05"), d("-5")) }, ErrInvalidLoyaltyBonus},
		{"premium negative rate first", func() (Account, error) { return NewPremiumSavingsAccount(1, d("1"), d("-1"), d("-5")) }, ErrInvalidInterestRate},
		{"business negative overdraft", func() (Account, error) { return NewBusinessAccount(1, d("1"), d("-50")) }, ErrInvalidOverdraftLimit},
		{"business negative number", func() (Account, error) { return NewBusinessAccount(-3, d("1"), d("50")) }, ErrInvalidAccountNumber},
		{"loan zero amount", func() (Account, error) { return NewLoanAccount(1, d("0"), d("0"), d("0.1")) }, ErrInvalidLoanTerms},
		{"loan negative rate", func() (Account, error) { return NewLoanAccount(1, d("0"), d("1000"), d("-0.1")) }, ErrInvalidLoanTerms},
		{"hybrid negative savings rate", func() (Account, error) { return NewHybridAccount(1, d("0"), d("-1"), d("1000"), d("0.1")) }, ErrInvalidInterestRate},
		{"hybrid bad loan", func() (Account, error) { return NewHybridAccount(1, d("0"), d("0.05"), d("-1"), d("0.1")) }, ErrInvalidLoanTerms},
		{"hybrid negative balance", func() (Account, error) { return NewHybridAccount(1, d("-1"), d("0.05"), d("1000"), d("0.1")) }, ErrInvalidBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.build()
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, a)
		})
	}
}

// TestSavingsScenario：存款 200 後餘額 700；提款 1000 失敗且餘額不變。
func TestSavingsScenario(t *testing.T) {
	a, err := NewSavingsAccount(101, d("500"), d("0.05"))
	require.NoError(t, err)

	require.NoError(t, a.Deposit(d("200")))
	assertBalance(t, a, "700")

	require.ErrorIs(t, a.Withdraw(d("1000")), ErrInvalidAmount)
	assertBalance(t, a, "700")

	require.NoError(t, a.Withdraw(d("700")))
	assertBalance(t, a, "0")
}

func TestNonPositiveAmounts(t *testing.T) {
	s, _ := NewSavingsAccount(1, d("100"), d("0"))
	b, _ := NewBusinessAccount(2, d("100"), d("50"))
	h, _ := NewHybridAccount(3, d("100"), d("0"), d("10"), d("0"))

	for _, a := range []Account{s, b, h} {
		for _, amt := range []string{"0", "-5"} {
			assert.ErrorIs(t, a.Deposit(d(amt)), ErrInvalidAmount, "%s deposit %s", a.Kind(), amt)
			assert.ErrorIs(t, a.Withdraw(d(amt)), ErrInvalidAmount, "%s withdraw %s", a.Kind(), amt)
		}
		assertBalance(t, a, "100")
	}
}

// TestDepositWithdrawRoundTrip：同額存入再提出，餘額完全還原。
func TestDepositWithdrawRoundTrip(t *testing.T) {
	s, _ := NewSavingsAccount(1, d("10.10"), d("0.01"))
	b, _ := NewBusinessAccount(2, d("0"), d("100"))
	h, _ := NewHybridAccount(3, d("42.5"), d("0.02"), d("500"), d("0.1"))

	for _, a := range []Account{s, b, h} {
		before := a.Balance()
		require.NoError(t, a.Deposit(d("0.1")))
		require.NoError(t, a.Withdraw(d("0.1")))
		assert.True(t, a.Balance().Equal(before), "%s: %s != %s", a.Kind(), a.Balance(), before)
	}
}

// TestBusinessOverdraftScenario：提款 140 後餘額 -40；再提 20 超出 balance+overdraft=10。
func TestBusinessOverdraftScenario(t *testing.T) {
	a, err := NewBusinessAccount(202, d("100"), d("50"))
	require.NoError(t, err)

	require.NoError(t, a.Withdraw(d("140")))
	assertBalance(t, a, "-40")

	require.ErrorIs(t, a.Withdraw(d("20")), ErrInvalidAmount)
	assertBalance(t, a, "-40")

	require.NoError(t, a.Withdraw(d("10")))
	assertBalance(t, a, "-50")
	assert.False(t, a.Balance().LessThan(a.OverdraftLimit().Neg()))

	require.NoError(t, a.Deposit(d("75")))
	assertBalance(t, a, "25")
}

// TestLoanScenario：貸款帳戶不可存款；全額還款後不可再還。
func TestLoanScenario(t *testing.T) {
	a, err := NewLoanAccount(303, d("0"), d("1000"), d("0.1"))
	require.NoError(t, err)

	require.ErrorIs(t, a.Deposit(d("50")), ErrOperationNotSupported)
	require.ErrorIs(t, a.Withdraw(d("50")), ErrOperationNotSupported)
	assertBalance(t, a, "0")

	require.NoError(t, a.Repay(d("1000")))
	assert.True(t, a.RepaidAmount().Equal(d("1000")))
	assert.True(t, a.RemainingLoan().IsZero())

	require.ErrorIs(t, a.Repay(d("1")), ErrInvalidRepayment)
	assert.True(t, a.RepaidAmount().Equal(d("1000")))
}

func TestLoanRepayMonotone(t *testing.T) {
	a, _ := NewLoanAccount(1, d("500"), d("300"), d("0.05"))

	prev := a.RepaidAmount()
	for _, amt := range []string{"100", "0", "-1", "250", "50.5", "149.5", "0.01"} {
		_ = a.Repay(d(amt))
		cur := a.RepaidAmount()
		assert.False(t, cur.LessThan(prev), "repaid decreased: %s -> %s", prev, cur)
		assert.False(t, cur.GreaterThan(a.LoanAmount()), "repaid %s > loan %s", cur, a.LoanAmount())
		prev = cur
	}
	assert.True(t, a.RepaidAmount().Equal(d("300")))
	assertBalance(t, a, "200")
}

func TestHybridAccount(t *testing.T) {
	a, err := NewHybridAccount(404, d("500"), d("0.05"), d("1000"), d("0.1"))
	require.NoError(t, err)

	require.NoError(t, a.Deposit(d("100")))
	require.NoError(t, a.Withdraw(d("50")))
	assertBalance(t, a, "550")
	require.ErrorIs(t, a.Withdraw(d("551")), ErrInvalidAmount)

	require.NoError(t, a.Repay(d("300")))
	assertBalance(t, a, "250")
	assert.True(t, a.RepaidAmount().Equal(d("300")))
	assert.True(t, a.RemainingLoan().Equal(d("700")))

	// 還款不得讓共用餘額低於 0
	require.ErrorIs(t, a.Repay(d("251")), ErrInvalidRepayment)
	assertBalance(t, a, "250")
	assert.True(t, a.RepaidAmount().Equal(d("300")))

	require.ErrorIs(t, a.Repay(d("0")), ErrInvalidRepayment)
}

func TestPremiumLoyaltyBonus(t *testing.T) {
	a, err := NewPremiumSavingsAccount(505, d("100"), d("0.03"), d("25"))
	require.NoError(t, err)

	assert.Equal(t, KindPremiumSavings, a.Kind())
	require.NoError(t, a.Deposit(d("10")))
	assertBalance(t, a, "110")

	require.NoError(t, a.AddLoyaltyBonus())
	require.NoError(t, a.AddLoyaltyBonus())
	assertBalance(t, a, "160")

	require.ErrorIs(t, a.Withdraw(d("161")), ErrInvalidAmount)
}

func TestCapabilityQueries(t *testing.T) {
	s, _ := NewSavingsAccount(1, d("0"), d("0"))
	p, _ := NewPremiumSavingsAccount(2, d("0"), d("0"), d("1"))
	b, _ := NewBusinessAccount(3, d("0"), d("0"))
	l, _ := NewLoanAccount(4, d("0"), d("1"), d("0"))
	h, _ := NewHybridAccount(5, d("0"), d("0"), d("1"), d("0"))

	for _, tc := range []struct {
		acct     Account
		repay    bool
		bonus    bool
		wantKind Kind
	}{
		{s, false, false, KindSavings},
		{p, false, true, KindPremiumSavings},
		{b, false, false, KindBusiness},
		{l, true, false, KindLoan},
		{h, true, false, KindHybrid},
	} {
		_, okR := AsRepayer(tc.acct)
		_, okB := AsBonusEarner(tc.acct)
		assert.Equal(t, tc.repay, okR, tc.wantKind.String())
		assert.Equal(t, tc.bonus, okB, tc.wantKind.String())
		assert.Equal(t, tc.wantKind, tc.acct.Kind())
	}
}

func TestDisplay(t *testing.T) {
	s, _ := NewSavingsAccount(101, d("700"), d("0.05"))
	assert.Equal(t, "Savings Account Number: 101\nBalance: 700\nInterest Rate: 5%\n", s.Display())

	p, _ := NewPremiumSavingsAccount(102, d("10"), d("0.05"), d("2.5"))
	out := p.Display()
	assert.True(t, strings.HasPrefix(out, "Savings Account Number: 102\nBalance: 10\nInterest Rate: 5%\n"), out)
	assert.Contains(t, out, "Loyalty Bonus: 2.5\n")

	b, _ := NewBusinessAccount(202, d("100"), d("50"))
	assert.Equal(t, "Business Account Number: 202\nBalance: 100\nOverdraft Limit: 50\n", b.Display())

	l, _ := NewLoanAccount(303, d("0"), d("1000"), d("0.1"))
	assert.Equal(t, "Loan Account Number: 303\nBalance: 0\nLoan Amount: 1000\nInterest Rate: 10%\nRepaid Amount: 0\n", l.Display())

	h, _ := NewHybridAccount(404, d("50"), d("0.05"), d("1000"), d("0.1"))
	out = h.Display()
	for _, line := range []string{
		"Hybrid Account Number: 404",
		"Balance: 50",
		"Savings Interest Rate: 5%",
		"Loan Amount: 1000",
		"Loan Interest Rate: 10%",
		"Repaid Amount: 0",
	} {
		assert.Contains(t, out, line)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindSavings, KindPremiumSavings, KindBusiness, KindLoan, KindHybrid} {
		got, err := ParseKind(strings.ToUpper(k.String()))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("checking")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Kind(0).String())
}

// TestConcurrentDepositsRaceSafety 驗證多個 goroutine 同時存款仍具資料一致性。
func TestConcurrentDepositsRaceSafety(t *testing.T) {
	a, _ := NewBusinessAccount(1, d("0"), d("100"))

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := a.Deposit(d("1")); err != nil {
				t.Errorf("deposit err: %v", err)
			}
		}()
	}
	wg.Wait()

	assertBalance(t, a, "100")
}

// TestConcurrentWithdrawCeiling 併發提款時，檢查與扣款在同一臨界區內，不會超出上限。
func TestConcurrentWithdrawCeiling(t *testing.T) {
	a, _ := NewSavingsAccount(1, d("50"), d("0"))

	var wg sync.WaitGroup
	wg.Add(200)
	for i := 0; i < 200; i++ {
		go func() {
			defer wg.Done()
			_ = a.Withdraw(d("1"))
		}()
	}
	wg.Wait()

	assertBalance(t, a, "0")
}
