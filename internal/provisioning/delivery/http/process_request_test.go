package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"campaign-srv/internal/model"
	"campaign-srv/pkg/scope"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newProvisionTestContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestProcessProvisionReq(t *testing.T) {
	h := &handler{l: noopLogger{}}

	t.Run("service caller identity", func(t *testing.T) {
		c := newProvisionTestContext(t, `{"customer_id":"1234567890","mode":"HYBRID"}`)
		c.Set("service_name", "scheduler")

		req, requestedBy, err := h.processProvisionReq(c)
		if err != nil {
			t.Fatalf("processProvisionReq returned error: %v", err)
		}
		if requestedBy != "scheduler" {
			t.Errorf("requested by: got %q, want scheduler", requestedBy)
		}
		if req.CustomerID != "1234567890" {
			t.Errorf("customer id: got %q", req.CustomerID)
		}
	})

	t.Run("scope caller identity", func(t *testing.T) {
		c := newProvisionTestContext(t, `{"customer_id":"1234567890"}`)
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "user-1"})
		c.Request = c.Request.WithContext(ctx)

		_, requestedBy, err := h.processProvisionReq(c)
		if err != nil {
			t.Fatalf("processProvisionReq returned error: %v", err)
		}
		if requestedBy != "user-1" {
			t.Errorf("requested by: got %q, want user-1", requestedBy)
		}
	})

	t.Run("no caller identity", func(t *testing.T) {
		c := newProvisionTestContext(t, `{"customer_id":"1234567890"}`)

		if _, _, err := h.processProvisionReq(c); err == nil {
			t.Fatal("expected an error without a caller identity")
		}
	})

	t.Run("lowercase mode accepted", func(t *testing.T) {
		c := newProvisionTestContext(t, `{"customer_id":"1234567890","mode":"hybrid"}`)
		c.Set("service_name", "scheduler")

		if _, _, err := h.processProvisionReq(c); err != nil {
			t.Fatalf("lowercase mode should validate: %v", err)
		}
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		c := newProvisionTestContext(t, `{"customer_id":"1234567890","mode":"LEGACY"}`)
		c.Set("service_name", "scheduler")

		if _, _, err := h.processProvisionReq(c); err != errInvalidMode {
			t.Fatalf("expected errInvalidMode, got %v", err)
		}
	})
}
