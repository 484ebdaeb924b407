package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/nulln0ne/dexter-estimator/internal/service"
	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

func newTestApp(t *testing.T, e dexter.Exchange) *fiber.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewQuoteService(logger, e)
	quotes := NewQuoteHandler(logger, svc)
	liquidity := NewLiquidityHandler(logger, svc)

	app := fiber.New()
	app.Get("/quote/xtz-to-token", quotes.XtzToToken())
	app.Get("/quote/token-to-xtz", quotes.TokenToXtz())
	app.Get("/quote/xtz-to-token/input", quotes.XtzToTokenInput())
	app.Get("/quote/token-to-xtz/input", quotes.TokenToXtzInput())
	app.Get("/liquidity/add", liquidity.Add())
	app.Get("/liquidity/add/xtz-in", liquidity.AddXtzIn())
	app.Get("/liquidity/remove", liquidity.Remove())
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, map[string]string{"error": string(body)}
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	fields := make(map[string]string, len(out))
	for k, v := range out {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return resp.StatusCode, fields
}

func TestXtzToTokenHandler_OK(t *testing.T) {
	e, err := dexter.NewExchange(dexter.MustAmount("0.3"), dexter.MustAmount("0.1"), false)
	if err != nil {
		t.Fatalf("NewExchange: %v", err)
	}
	app := newTestApp(t, e)

	status, body := get(t, app, "/quote/xtz-to-token?amount_in=1000000&xtz_pool=1000000000&token_pool=250000&slippage=0.01")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d %v", status, body)
	}
	if body["amount_out"] != "248" || body["minimum_out"] != "245" || body["direction"] != service.DirectionXtzToToken {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestTokenToXtzHandler_DefaultSlippage(t *testing.T) {
	app := newTestApp(t, dexter.DexterV1())

	status, body := get(t, app, "/quote/token-to-xtz?amount_in=1000&xtz_pool=1000000&token_pool=1000")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d %v", status, body)
	}
	// 1000*1000000*997 / (1000*1000000 + 1000*997*1000) = 499248.87...
	if body["amount_out"] != "499248" {
		t.Fatalf("unexpected amount_out: %v", body)
	}
	// floor((499248000 - 2496240) / 1000)
	if body["minimum_out"] != "496751" {
		t.Fatalf("unexpected minimum_out: %v", body)
	}
}

func TestInputHandlers(t *testing.T) {
	app := newTestApp(t, dexter.DexterV1())

	status, body := get(t, app, "/quote/xtz-to-token/input?amount_out=500&xtz_pool=1000000&token_pool=1000")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d %v", status, body)
	}
	// 1000000*500*1000 / (997*500) = 1003009.02... rounded up
	if body["amount_in"] != "1003010" {
		t.Fatalf("unexpected amount_in: %v", body)
	}

	status, _ = get(t, app, "/quote/token-to-xtz/input?amount_out=1000000&xtz_pool=1000000&token_pool=1000")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 when draining the pool, got %d", status)
	}
}

func TestLiquidityHandlers(t *testing.T) {
	app := newTestApp(t, dexter.DexterV1())

	status, body := get(t, app, "/liquidity/add?xtz_in=1000000&xtz_pool=3000000&token_pool=1000000&total_liquidity=3000000")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d %v", status, body)
	}
	if body["token_in"] != "333334" || body["liquidity_created"] != "1000000" {
		t.Fatalf("unexpected add body: %v", body)
	}

	status, body = get(t, app, "/liquidity/add?xtz_in=5000000&total_liquidity=0")
	if status != http.StatusOK || body["liquidity_created"] != "5000000" {
		t.Fatalf("unexpected bootstrap: %d %v", status, body)
	}

	status, body = get(t, app, "/liquidity/add/xtz-in?token_in=1&xtz_pool=3000000&token_pool=7")
	if status != http.StatusOK || body["xtz_in"] != "428571" {
		t.Fatalf("unexpected xtz-in: %d %v", status, body)
	}

	status, body = get(t, app, "/liquidity/remove?liquidity_burned=250&total_liquidity=1000&xtz_pool=10000000&token_pool=4001&trade_volume=1000000")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d %v", status, body)
	}
	if body["xtz_out"] != "2500000" || body["token_out"] != "1000" || body["fee_share"] != "250" {
		t.Fatalf("unexpected remove body: %v", body)
	}
}

func TestHandler_Validation(t *testing.T) {
	app := newTestApp(t, dexter.LiquidityBaking())

	cases := []string{
		"/quote/xtz-to-token",
		"/quote/xtz-to-token?amount_in=abc&xtz_pool=1&token_pool=1",
		"/quote/xtz-to-token?amount_in=1&xtz_pool=1&token_pool=1&decimals=-2",
		"/quote/xtz-to-token?amount_in=1&xtz_pool=1&token_pool=1&slippage=1.5",
		"/quote/token-to-xtz?amount_in=0&xtz_pool=1&token_pool=1",
		"/liquidity/remove?liquidity_burned=1&total_liquidity=0&xtz_pool=1&token_pool=1",
		"/liquidity/add?xtz_in=1",
		"/quote/xtz-to-token?amount_in=1&xtz_pool=1&token_pool=1&decimals=50000000",
		"/quote/xtz-to-token?amount_in=1&xtz_pool=1&token_pool=1&decimals=256",
		"/quote/xtz-to-token?amount_in=1e50000000&xtz_pool=1&token_pool=1",
		"/quote/token-to-xtz/input?amount_out=1&xtz_pool=1e-50000000&token_pool=1",
		"/liquidity/add?xtz_in=5000000&xtz_pool=3000000&total_liquidity=0",
		"/liquidity/remove?liquidity_burned=11&total_liquidity=10&xtz_pool=1&token_pool=1",
	}
	for _, target := range cases {
		if status, body := get(t, app, target); status != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d %v", target, status, body)
		}
	}
}
