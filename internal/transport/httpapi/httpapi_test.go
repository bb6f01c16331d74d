package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pragyajhaa/apex/internal/usecase/order"
)

type fakeFlow struct {
	placeRes  OrderResponse
	placeErr  error
	limitsRes LimitsResponse
	limitsErr error
}

func (f *fakeFlow) Place(context.Context, OrderRequest) (OrderResponse, error) {
	return f.placeRes, f.placeErr
}

func (f *fakeFlow) Limits(context.Context, string) (LimitsResponse, error) {
	return f.limitsRes, f.limitsErr
}

func (f *fakeFlow) Balances(context.Context) ([]BalanceEntry, error) { return nil, nil }

func (f *fakeFlow) Book(context.Context, string, int) (BookResponse, error) {
	return BookResponse{}, nil
}

func (f *fakeFlow) ServerTime(context.Context) (int64, error) { return 1700000000000, nil }

func doRequest(t *testing.T, flow OrderFacade, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := New(":0", flow, nil)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	w := doRequest(t, &fakeFlow{}, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("status=%v", resp["status"])
	}
	if _, ok := resp["exchange_time"]; !ok {
		t.Fatal("exchange_time missing")
	}
}

func TestHandleOrderSuccess(t *testing.T) {
	flow := &fakeFlow{placeRes: OrderResponse{OrderID: 7, Symbol: "BTCUSDT", Status: "NEW"}}
	w := doRequest(t, flow, http.MethodPost, "/api/order",
		`{"symbol":"BTCUSDT","side":"BUY","type":"MARKET","quantity":"0.001"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	var resp OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.OrderID != 7 || resp.Status != "NEW" {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestHandleOrderBadJSON(t *testing.T) {
	w := doRequest(t, &fakeFlow{}, http.MethodPost, "/api/order", `{"symbol":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestHandleOrderMethodNotAllowed(t *testing.T) {
	w := doRequest(t, &fakeFlow{}, http.MethodGet, "/api/order", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestHandleOrderValidationError(t *testing.T) {
	flow := &fakeFlow{placeErr: &order.ValidationError{Field: "price", Reason: "price is required for LIMIT orders"}}
	w := doRequest(t, flow, http.MethodPost, "/api/order",
		`{"symbol":"BTCUSDT","side":"BUY","type":"LIMIT","quantity":"0.001"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.Field != "price" || resp.Error != "price is required for LIMIT orders" {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestHandleOrderDispatchError(t *testing.T) {
	flow := &fakeFlow{placeErr: &order.OrderError{Op: "MARKET", Err: errors.New("Invalid API-key")}}
	w := doRequest(t, flow, http.MethodPost, "/api/order",
		`{"symbol":"BTCUSDT","side":"BUY","type":"MARKET","quantity":"0.001"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("code=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !strings.Contains(resp.Error, "Invalid API-key") {
		t.Fatalf("error=%q", resp.Error)
	}
}

func TestHandleLimitsMissingSymbol(t *testing.T) {
	w := doRequest(t, &fakeFlow{}, http.MethodGet, "/api/limits", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestHandleLimitsOK(t *testing.T) {
	flow := &fakeFlow{limitsRes: LimitsResponse{Symbol: "BTCUSDT", MinQty: "0.001"}}
	w := doRequest(t, flow, http.MethodGet, "/api/limits?symbol=btcusdt", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	var resp LimitsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.MinQty != "0.001" {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestCORSPreflight(t *testing.T) {
	w := doRequest(t, &fakeFlow{}, http.MethodOptions, "/api/order", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("code=%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q", got)
	}
}
