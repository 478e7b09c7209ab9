// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式與領域錯誤 → HTTP 狀態碼的對應。

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"onlinebanking/internal/bank"
)

// writeJSON 統一輸出成功回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 以 {"error": "..."} 輸出錯誤，狀態碼由 statusFor 決定。
func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	var bad errBadRequest
	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest
	case errors.Is(err, bank.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, bank.ErrDuplicateAccountNumber):
		return http.StatusConflict
	case errors.Is(err, bank.ErrOperationNotSupported):
		return http.StatusUnprocessableEntity
	case errors.Is(err, bank.ErrInvalidAccountNumber),
		errors.Is(err, bank.ErrInvalidBalance),
		errors.Is(err, bank.ErrInvalidInterestRate),
		errors.Is(err, bank.ErrInvalidLoyaltyBonus),
		errors.Is(err, bank.ErrInvalidOverdraftLimit),
		errors.Is(err, bank.ErrInvalidLoanTerms),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrInvalidRepayment):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
