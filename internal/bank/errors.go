// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 每一種錯誤對應一種被拒絕的請求，不會導致程序中止；
// 上層 HTTP handler 以 errors.Is 比對後轉換成對應的 HTTP 狀態碼。

package bank

import "errors"

// 建立帳戶時的參數驗證錯誤。
var (
	// ErrInvalidAccountNumber 代表帳號 <= 0。
	ErrInvalidAccountNumber = errors.New("account number must be positive")

	// ErrInvalidBalance 代表初始餘額為負。
	ErrInvalidBalance = errors.New("account balance cannot be negative")

	// ErrInvalidInterestRate 代表利率為負。
	ErrInvalidInterestRate = errors.New("interest rate cannot be negative")

	// ErrInvalidLoyaltyBonus 代表忠誠獎勵金為負。
	ErrInvalidLoyaltyBonus = errors.New("loyalty bonus cannot be negative")

	// ErrInvalidOverdraftLimit 代表透支額度為負。
	ErrInvalidOverdraftLimit = errors.New("overdraft limit cannot be negative")

	// ErrInvalidLoanTerms 代表貸款金額 <= 0 或貸款利率為負。
	ErrInvalidLoanTerms = errors.New("loan amount must be positive and interest rate cannot be negative")
)

// 帳戶操作錯誤。
var (
	// ErrInvalidAmount 代表存提款金額 <= 0，或超過該帳戶類型的提款上限。
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRepayment 代表還款金額 <= 0 或超過剩餘貸款。
	ErrInvalidRepayment = errors.New("invalid repayment amount")

	// ErrOperationNotSupported 代表該帳戶不具備此操作能力（例如貸款帳戶存款）。
	ErrOperationNotSupported = errors.New("operation not supported for this account")
)

// 帳戶登錄表（Registry）錯誤。
var (
	// ErrDuplicateAccountNumber 代表帳號已存在。
	ErrDuplicateAccountNumber = errors.New("account number already exists")

	// ErrAccountNotFound 代表帳戶不存在。
	ErrAccountNotFound = errors.New("account not found")
)
