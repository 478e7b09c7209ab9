// internal/server/view.go

package server

import (
	"github.com/shopspring/decimal"

	"onlinebanking/internal/bank"
)

// AccountView 為帳戶的 JSON 表示；僅輸出該類型具備的欄位。
type AccountView struct {
	AccountNumber    int64            `json:"account_number"`
	Kind             string           `json:"kind"`
	Balance          decimal.Decimal  `json:"balance"`
	InterestRate     *decimal.Decimal `json:"interest_rate,omitempty"`
	LoyaltyBonus     *decimal.Decimal `json:"loyalty_bonus,omitempty"`
	OverdraftLimit   *decimal.Decimal `json:"overdraft_limit,omitempty"`
	LoanAmount       *decimal.Decimal `json:"loan_amount,omitempty"`
	LoanInterestRate *decimal.Decimal `json:"loan_interest_rate,omitempty"`
	RepaidAmount     *decimal.Decimal `json:"repaid_amount,omitempty"`
	RemainingLoan    *decimal.Decimal `json:"remaining_loan,omitempty"`
}

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func newView(a bank.Account) AccountView {
	v := AccountView{
		AccountNumber: a.Number(),
		Kind:          a.Kind().String(),
		Balance:       a.Balance(),
	}
	if s, ok := a.(interface{ InterestRate() decimal.Decimal }); ok {
		v.InterestRate = ptr(s.InterestRate())
	}
	if b, ok := a.(interface{ OverdraftLimit() decimal.Decimal }); ok {
		v.OverdraftLimit = ptr(b.OverdraftLimit())
	}
	if p, ok := bank.AsBonusEarner(a); ok {
		v.LoyaltyBonus = ptr(p.LoyaltyBonus())
	}
	if r, ok := bank.AsRepayer(a); ok {
		v.LoanAmount = ptr(r.LoanAmount())
		v.LoanInterestRate = ptr(r.LoanInterestRate())
		v.RepaidAmount = ptr(r.RepaidAmount())
		v.RemainingLoan = ptr(r.RemainingLoan())
	}
	return v
}

func newViews(accts []bank.Account) []AccountView {
	out := make([]AccountView, 0, len(accts))
	for _, a := range accts {
		out = append(out, newView(a))
	}
	return out
}
