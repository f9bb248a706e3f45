package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stallworks/stallpos-api/internal/application/service"
	"github.com/stallworks/stallpos-api/internal/config"
	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/infrastructure/database"
	infraRepo "github.com/stallworks/stallpos-api/internal/infrastructure/repository"
	"github.com/stallworks/stallpos-api/internal/presentation/http/handler"
	"github.com/stallworks/stallpos-api/pkg/email"
	"github.com/stallworks/stallpos-api/pkg/printer"
	"github.com/stallworks/stallpos-api/pkg/utils"
)

// newTestServer wires the full router against a temp-dir database, the
// way cmd/api does, and returns a logged-in operator token.
func newTestServer(t *testing.T, rateRequests, rateDuration int) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "stallpos-test", Port: "0"},
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "stallpos_test.db"),
		},
		Auth: config.AuthConfig{
			OperatorPIN:        "1234",
			MaintenancePasskey: "5544",
			Register:           "main",
		},
		RateLimit: config.RateLimitConfig{Requests: rateRequests, Duration: rateDuration},
		Export:    config.ExportConfig{Dir: filepath.Join(t.TempDir(), "exports")},
	}

	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	menuRepo := infraRepo.NewMenuRepository(db)
	saleRepo := infraRepo.NewSaleRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	authService, err := service.NewAuthService(&cfg.Auth, jwtManager)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	catalogService := service.NewCatalogService(menuRepo)
	receiptService := service.NewReceiptService(printer.NewNullPrinter(), cfg.App.Name, 32)
	billService := service.NewBillService(menuRepo, saleRepo, receiptService)
	reportService := service.NewReportService(saleRepo)
	exportService := service.NewExportService(reportService, cfg.Export.Dir, cfg.App.Name)
	maintenanceService := service.NewMaintenanceService(saleRepo, authService)

	h := Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Menu:   handler.NewMenuHandler(catalogService),
		Bill:   handler.NewBillHandler(billService),
		Sale:   handler.NewSaleHandler(reportService),
		Report: handler.NewReportHandler(reportService, exportService, maintenanceService, email.NewEmailService(email.EmailConfig{}), cfg.App.Name),
	}

	router := Setup(cfg, jwtManager, idempotencyRepo, h)

	login, err := authService.Login("1234")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	return router, db, login.AccessToken
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// A double-tapped Complete with the same Idempotency-Key must record
// exactly one sale; the second request gets the cached response back.
func TestCompleteSaleIdempotency(t *testing.T) {
	router, db, token := newTestServer(t, 100, 1)

	w := doJSON(t, router, http.MethodPost, "/api/v1/menu", token,
		map[string]interface{}{"name": "Tea", "price": 20}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("add menu item: status %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		Data entity.MenuItem `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode menu item: %v", err)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/bill/items", token,
		map[string]interface{}{"menu_item_id": created.Data.ID}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add bill item: status %d, body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPut, "/api/v1/bill/payment", token,
		map[string]interface{}{"method": "cash"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set payment: status %d, body %s", w.Code, w.Body.String())
	}

	t.Run("missing key is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/bill/complete", token, nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without Idempotency-Key, got %d", w.Code)
		}
	})

	key := map[string]string{"Idempotency-Key": "tap-1"}

	first := doJSON(t, router, http.MethodPost, "/api/v1/bill/complete", token, nil, key)
	if first.Code != http.StatusCreated {
		t.Fatalf("first complete: status %d, body %s", first.Code, first.Body.String())
	}

	second := doJSON(t, router, http.MethodPost, "/api/v1/bill/complete", token, nil, key)
	if second.Code != http.StatusCreated {
		t.Fatalf("replayed complete: status %d, body %s", second.Code, second.Body.String())
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("expected replay marker header on second complete")
	}
	if second.Body.String() != first.Body.String() {
		t.Error("replayed response must match the original body")
	}

	var saleCount int64
	if err := db.Model(&entity.Sale{}).Count(&saleCount).Error; err != nil {
		t.Fatalf("count sales: %v", err)
	}
	if saleCount != 1 {
		t.Errorf("expected exactly 1 recorded sale, got %d", saleCount)
	}

	t.Run("a fresh key after the reset is rejected by the empty-bill guard", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/bill/complete", token, nil,
			map[string]string{"Idempotency-Key": "tap-2"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 on empty bill, got %d", w.Code)
		}

		var saleCount int64
		if err := db.Model(&entity.Sale{}).Count(&saleCount).Error; err != nil {
			t.Fatalf("count sales: %v", err)
		}
		if saleCount != 1 {
			t.Errorf("failed attempt must not add a sale, got %d", saleCount)
		}
	})
}

// The limiter must run with the configured RATE_LIMIT_REQUESTS /
// RATE_LIMIT_DURATION values, not built-in defaults.
func TestRateLimitHonorsConfig(t *testing.T) {
	// 1 request per 60s: the second request within the window must be
	// rejected, which only happens when the configured burst is applied.
	router, _, token := newTestServer(t, 1, 60)

	first := doJSON(t, router, http.MethodGet, "/api/v1/bill", token, nil, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status %d, body %s", first.Code, first.Body.String())
	}

	second := doJSON(t, router, http.MethodGet, "/api/v1/bill", token, nil, nil)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for second request in window, got %d", second.Code)
	}

	t.Run("health stays reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("health: status %d", w.Code)
		}
	})
}

// Unauthenticated requests never reach the protected group.
func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _, _ := newTestServer(t, 100, 1)

	for _, path := range []string{"/api/v1/bill", "/api/v1/menu", "/api/v1/sales"} {
		w := doJSON(t, router, http.MethodGet, path, "", nil, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without token, got %d", path, w.Code)
		}
	}

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/bill", "not-a-token", nil, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 with bad token, got %d", w.Code)
		}
	})
}
