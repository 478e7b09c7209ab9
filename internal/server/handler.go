// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供 HTTP RESTful 介面，作為 bank 模組的前端協作者。
// 每個 handler 僅負責：
//  1. 接收與驗證 HTTP 請求
//  2. 透過 Registry 查詢帳戶並呼叫其能力方法
//  3. 回傳標準化 JSON 回應（或 Display 文字）
package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"onlinebanking/internal/bank"
	"onlinebanking/internal/logging"
)

// Server 為 HTTP 層核心結構：
// - Registry：注入帳戶登錄表。
// - metrics：操作結果與延遲指標；exposeMetrics 為 true 時掛載 /metrics。
type Server struct {
	Registry      *bank.Registry
	log           *logging.Logger
	metrics       *Metrics
	exposeMetrics bool
	validate      *validator.Validate
}

// Options 為 NewServer 的選用設定。
type Options struct {
	Logger        *logging.Logger // nil 時不輸出日誌
	ExposeMetrics bool
}

// NewServer 建立新的 HTTP 伺服器。
func NewServer(r *bank.Registry, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	m := NewMetrics()
	m.setAccounts(r.Len())
	return &Server{
		Registry:      r,
		log:           log,
		metrics:       m,
		exposeMetrics: opts.ExposeMetrics,
		validate:      validator.New(),
	}
}

// createAccount 處理 POST /accounts。
func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	req, err := bind[createAccountRequest](s.validate, r)
	if err != nil {
		s.reject(w, "create", 0, err)
		return
	}
	a, err := req.build()
	if err == nil {
		err = s.Registry.Add(a)
	}
	s.metrics.observeOp("create", err)
	if err != nil {
		s.reject(w, "create", req.AccountNumber, err)
		return
	}
	s.metrics.setAccounts(s.Registry.Len())
	writeJSON(w, http.StatusCreated, newView(a))
}

// listAccounts 處理 GET /accounts；沒有帳戶時回傳 []。
func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newViews(s.Registry.List()))
}

// getAccount 處理 GET /accounts/{number}。
func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r, "get")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newView(a))
}

// displayAccount 處理 GET /accounts/{number}/display，回傳純文字。
func (s *Server) displayAccount(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r, "display")
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(a.Display()))
}

// deleteAccount 處理 DELETE /accounts/{number}。
func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	n, err := accountNumber(r)
	if err == nil {
		_, err = s.Registry.Remove(n)
	}
	s.metrics.observeOp("remove", err)
	if err != nil {
		s.reject(w, "remove", n, err)
		return
	}
	s.metrics.setAccounts(s.Registry.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "deposit", func(a bank.Account, amt decimal.Decimal) error {
		return a.Deposit(amt)
	})
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "withdraw", func(a bank.Account, amt decimal.Decimal) error {
		return a.Withdraw(amt)
	})
}

// repay 僅適用具備還款能力的帳戶，其餘回傳 ErrOperationNotSupported。
func (s *Server) repay(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "repay", func(a bank.Account, amt decimal.Decimal) error {
		rp, ok := bank.AsRepayer(a)
		if !ok {
			return fmt.Errorf("%w: account %d does not support loan repayment", bank.ErrOperationNotSupported, a.Number())
		}
		return rp.Repay(amt)
	})
}

// loyaltyBonus 處理 POST /accounts/{number}/loyalty-bonus（無 body）。
func (s *Server) loyaltyBonus(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r, "loyalty_bonus")
	if !ok {
		return
	}
	var err error
	if be, ok := bank.AsBonusEarner(a); ok {
		err = be.AddLoyaltyBonus()
	} else {
		err = fmt.Errorf("%w: account %d has no loyalty bonus", bank.ErrOperationNotSupported, a.Number())
	}
	s.metrics.observeOp("loyalty_bonus", err)
	if err != nil {
		s.reject(w, "loyalty_bonus", a.Number(), err)
		return
	}
	writeJSON(w, http.StatusOK, newView(a))
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// mutate 為金額類操作的共用流程：查詢帳戶 → 解析金額 → 執行 → 回傳最新狀態。
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, op string, fn func(bank.Account, decimal.Decimal) error) {
	a, ok := s.lookup(w, r, op)
	if !ok {
		return
	}
	req, err := bind[amountRequest](s.validate, r)
	if err == nil {
		err = fn(a, *req.Amount)
	}
	s.metrics.observeOp(op, err)
	if err != nil {
		s.reject(w, op, a.Number(), err)
		return
	}
	writeJSON(w, http.StatusOK, newView(a))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request, op string) (bank.Account, bool) {
	n, err := accountNumber(r)
	if err != nil {
		s.reject(w, op, 0, err)
		return nil, false
	}
	a, err := s.Registry.Find(n)
	if err != nil {
		s.metrics.observeOp(op, err)
		s.reject(w, op, n, err)
		return nil, false
	}
	return a, true
}

func (s *Server) reject(w http.ResponseWriter, op string, number int64, err error) {
	s.log.Info("operation rejected",
		zap.String("operation", op),
		zap.Int64("account_number", number),
		zap.Error(err),
	)
	writeErr(w, err)
}

func accountNumber(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["number"]
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errBadRequest{fmt.Errorf("invalid account number %q", raw)}
	}
	return n, nil
}
