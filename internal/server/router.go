// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊；所有端點同時掛在 / 與 /api/v1 之下。
package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router 建立並回傳整個 HTTP 處理鏈。
func (s *Server) Router() http.Handler {
	root := mux.NewRouter()
	root.Use(requestID, s.observe)

	s.routes(root.PathPrefix("/api/v1").Subrouter())
	s.routes(root)

	if s.exposeMetrics {
		root.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	return root
}

func (s *Server) routes(r *mux.Router) {
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/accounts", s.listAccounts).Methods(http.MethodGet)
	r.HandleFunc("/accounts", s.createAccount).Methods(http.MethodPost)

	r.HandleFunc("/accounts/{number}", s.getAccount).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{number}", s.deleteAccount).Methods(http.MethodDelete)
	r.HandleFunc("/accounts/{number}/display", s.displayAccount).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{number}/deposit", s.deposit).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{number}/withdraw", s.withdraw).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{number}/repay", s.repay).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{number}/loyalty-bonus", s.loyaltyBonus).Methods(http.MethodPost)
}
