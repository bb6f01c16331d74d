package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pragyajhaa/apex/internal/usecase/order"
)

//go:embed webui/*
var embeddedFS embed.FS

// OrderFacade — всё, что нужно дашборду от бэкенда.
type OrderFacade interface {
	Place(ctx context.Context, req OrderRequest) (OrderResponse, error)
	Limits(ctx context.Context, symbol string) (LimitsResponse, error)
	Balances(ctx context.Context) ([]BalanceEntry, error)
	Book(ctx context.Context, symbol string, depth int) (BookResponse, error)
	ServerTime(ctx context.Context) (int64, error)
}

type Server struct {
	addr   string
	flow   OrderFacade
	log    *zap.Logger
	server *http.Server
}

func New(addr string, flow OrderFacade, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{addr: addr, flow: flow, log: log}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// API
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/order", s.handleOrder)
	mux.HandleFunc("/api/limits", s.handleLimits)
	mux.HandleFunc("/api/balance", s.handleBalance)
	mux.HandleFunc("/api/book", s.handleBook)

	// static
	sub, err := fs.Sub(embeddedFS, "webui")
	if err != nil {
		s.log.Error("embed sub error", zap.Error(err))
		mux.Handle("/", http.FileServer(http.FS(embeddedFS)))
	} else {
		mux.Handle("/", http.FileServer(http.FS(sub)))
	}

	return withCORS(mux)
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("HTTP server listening", zap.String("addr", s.addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler отдаёт роуты без запуска сервера; нужен тестам.
func (s *Server) Handler() http.Handler { return s.routes() }

// handleHealth заодно пробует достучаться до биржи: живой дашборд с
// мёртвым соединением бесполезен.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := map[string]any{"status": "ok"}
	if ts, err := s.flow.ServerTime(ctx); err != nil {
		resp["status"] = "degraded"
		resp["exchange_error"] = err.Error()
	} else {
		resp["exchange_time"] = ts
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	res, err := s.flow.Place(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "missing 'symbol' query param", Field: "symbol"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := s.flow.Limits(ctx, symbol)
	if err != nil {
		s.writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := s.flow.Balances(ctx)
	if err != nil {
		s.writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "missing 'symbol' query param", Field: "symbol"})
		return
	}
	depth := 10
	if raw := r.URL.Query().Get("depth"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			depth = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := s.flow.Book(ctx, symbol, depth)
	if err != nil {
		s.writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeError маппит два вида ошибок на статусы: валидация — 400,
// отказ биржи — 502, прочее — 500. Текст отдаём как есть.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var vErr *order.ValidationError
	if errors.As(err, &vErr) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: vErr.Reason, Field: vErr.Field})
		return
	}
	var oErr *order.OrderError
	if errors.As(err, &oErr) {
		s.log.Warn("order dispatch failed", zap.String("op", oErr.Op), zap.Error(oErr.Err))
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: oErr.Error()})
		return
	}
	s.log.Error("request failed", zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
