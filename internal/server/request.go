// internal/server/request.go
//
// 請求 DTO 與驗證。數值欄位以 decimal 解析，可接受 JSON 數字或字串。

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"onlinebanking/internal/bank"
)

// createAccountRequest 涵蓋所有帳戶類型的建立參數；未使用的欄位會被忽略。
type createAccountRequest struct {
	Kind             string           `json:"kind" validate:"required,oneof=savings premium_savings business loan hybrid"`
	AccountNumber    int64            `json:"account_number"`
	Balance          *decimal.Decimal `json:"balance" validate:"required"`
	InterestRate     *decimal.Decimal `json:"interest_rate"`
	LoyaltyBonus     *decimal.Decimal `json:"loyalty_bonus"`
	OverdraftLimit   *decimal.Decimal `json:"overdraft_limit"`
	LoanAmount       *decimal.Decimal `json:"loan_amount"`
	LoanInterestRate *decimal.Decimal `json:"loan_interest_rate"`
}

type amountRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

// orZero 將未提供的欄位視為 0，交由 bank 層的建構驗證處理。
func orZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

// build 依 kind 呼叫對應的建構函式。
func (req createAccountRequest) build() (bank.Account, error) {
	kind, err := bank.ParseKind(req.Kind)
	if err != nil {
		return nil, errBadRequest{err}
	}
	n, bal := req.AccountNumber, orZero(req.Balance)
	switch kind {
	case bank.KindSavings:
		return bank.NewSavingsAccount(n, bal, orZero(req.InterestRate))
	case bank.KindPremiumSavings:
		return bank.NewPremiumSavingsAccount(n, bal, orZero(req.InterestRate), orZero(req.LoyaltyBonus))
	case bank.KindBusiness:
		return bank.NewBusinessAccount(n, bal, orZero(req.OverdraftLimit))
	case bank.KindLoan:
		// 純貸款帳戶只有一個利率；interest_rate 與 loan_interest_rate 皆可。
		rate := req.LoanInterestRate
		if rate == nil {
			rate = req.InterestRate
		}
		return bank.NewLoanAccount(n, bal, orZero(req.LoanAmount), orZero(rate))
	case bank.KindHybrid:
		return bank.NewHybridAccount(n, bal, orZero(req.InterestRate), orZero(req.LoanAmount), orZero(req.LoanInterestRate))
	}
	return nil, errBadRequest{fmt.Errorf("unsupported account kind %s", kind)}
}

// errBadRequest 標記解析或驗證失敗，對應 400。
type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

// bind 解析 JSON body 並以 validator 驗證。
func bind[T any](v *validator.Validate, r *http.Request) (*T, error) {
	var in T
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return nil, errBadRequest{fmt.Errorf("invalid request body: %w", err)}
	}
	if err := v.Struct(in); err != nil {
		return nil, errBadRequest{fmt.Errorf("validation failed: %w", err)}
	}
	return &in, nil
}
