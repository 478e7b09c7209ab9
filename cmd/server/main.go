// cmd/server/main.go

// 本服務以 RESTful API 提供帳戶建立、存提款、還款、忠誠獎勵金與帳戶查詢。
// 此檔案負責載入設定、初始化模組（config, logging, bank, server），
// 啟動 HTTP 伺服器，並在收到 SIGINT/SIGTERM 時優雅關閉。
// 所有帳戶狀態僅存在記憶體中，程序結束即消失。

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"onlinebanking/internal/bank"
	"onlinebanking/internal/config"
	"onlinebanking/internal/logging"
	"onlinebanking/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log.Logging())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	s := server.NewServer(bank.NewRegistry(), server.Options{
		Logger:        logger.Named("http"),
		ExposeMetrics: cfg.MetricsEnabled,
	})
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bank server running", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
