package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/gin-gonic/gin"

	"github.com/tallerbv/taller-backend/internal/admin"
	"github.com/tallerbv/taller-backend/internal/handlers"
	"github.com/tallerbv/taller-backend/internal/middleware"
	"github.com/tallerbv/taller-backend/internal/report"
	"github.com/tallerbv/taller-backend/internal/repos"
	"github.com/tallerbv/taller-backend/internal/repos/testutil"
	"github.com/tallerbv/taller-backend/internal/services"
	"gorm.io/gorm"
)

func testRouter(tb testing.TB) (*gin.Engine, *gorm.DB) {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutil.DB(tb)
	log := testutil.Logger(tb)

	dir := tb.TempDir()
	imgDir := filepath.Join(dir, "img")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		tb.Fatalf("mkdir img: %v", err)
	}
	for _, name := range []string{"header.png", "footer.png"} {
		dc := gg.NewContext(40, 12)
		dc.SetColor(color.NRGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff})
		dc.Clear()
		if err := dc.SavePNG(filepath.Join(imgDir, name)); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}

	workOrderRepo := repos.NewWorkOrderRepo(gdb, log)
	invoiceRepo := repos.NewInvoiceRepo(gdb, log)
	adminService := services.NewAdminService(gdb, log, admin.DefaultRegistry())
	reportService := services.NewReportService(
		gdb, log, workOrderRepo, invoiceRepo,
		report.Config{AssetDir: dir}, report.DefaultProfile(),
	)

	router := NewRouter(RouterConfig{
		RequestLogMiddleware: middleware.NewRequestLogMiddleware(log),
		AdminHandler:         handlers.NewAdminHandler(log, adminService),
		ReportHandler:        handlers.NewReportHandler(log, reportService),
	})
	return router, gdb
}

func do(tb testing.TB, router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	tb.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := testRouter(t)
	w := do(t, router, http.MethodGet, "/healthcheck", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}

func TestAdminCRUDOverHTTP(t *testing.T) {
	router, _ := testRouter(t)

	w := do(t, router, http.MethodPost, "/api/admin/parts", `{"name":"Carrocería"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Record struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.Record.ID == 0 || created.Record.Name != "Carrocería" {
		t.Fatalf("created %+v", created.Record)
	}

	w = do(t, router, http.MethodGet, "/api/admin/parts/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status %d: %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodPut, "/api/admin/parts/1", `{"name":"Parabrisas"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Parabrisas") {
		t.Fatalf("update response %s", w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/admin/parts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d", w.Code)
	}

	w = do(t, router, http.MethodDelete, "/api/admin/parts/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status %d: %s", w.Code, w.Body.String())
	}
	w = do(t, router, http.MethodGet, "/api/admin/parts/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestAdminUnknownResourceOverHTTP(t *testing.T) {
	router, _ := testRouter(t)
	w := do(t, router, http.MethodGet, "/api/admin/widgets", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminInvalidID(t *testing.T) {
	router, _ := testRouter(t)
	w := do(t, router, http.MethodGet, "/api/admin/parts/not-a-number", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWorkOrderExportOverHTTP(t *testing.T) {
	router, gdb := testRouter(t)
	ctx := context.Background()

	wo := testutil.SeedWorkOrder(t, ctx, gdb)
	part := testutil.SeedPart(t, ctx, gdb, "Carrocería")
	testutil.SeedPhysicalState(t, ctx, gdb, wo.ID, part.ID, "Rayaduras en puerta trasera")

	w := do(t, router, http.MethodGet, "/api/reports/workorders/1/pdf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Orden de trabajo.pdf") {
		t.Fatalf("content disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestInvoiceExportOverHTTP(t *testing.T) {
	router, gdb := testRouter(t)
	ctx := context.Background()

	inv := testutil.SeedInvoice(t, ctx, gdb)
	testutil.SeedActivity(t, ctx, gdb, inv.WorkOrderID, 101, "15.00", 2)

	w := do(t, router, http.MethodGet, "/api/reports/invoices/1/pdf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Factura.pdf") {
		t.Fatalf("content disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestExportMissingAggregateIs404(t *testing.T) {
	router, _ := testRouter(t)
	w := do(t, router, http.MethodGet, "/api/reports/workorders/9999/pdf", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w = do(t, router, http.MethodGet, "/api/reports/invoices/9999/pdf", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
