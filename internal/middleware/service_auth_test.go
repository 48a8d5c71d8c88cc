package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"campaign-srv/config"
	"campaign-srv/pkg/encrypter"
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

func newServiceAuthTestContext(t *testing.T) (Middleware, encrypter.Encrypter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enc := encrypter.New("0123456789abcdef0123456789abcdef")
	cfg := &config.Config{
		InternalConfig: config.InternalConfig{
			ServiceKeys: map[string]string{"scheduler": "topsecret"},
		},
	}
	return Middleware{l: noopLogger{}, config: cfg, encrypter: enc}, enc
}

func runServiceAuth(t *testing.T, mw Middleware, serviceKey string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/runs", nil)
	if serviceKey != "" {
		c.Request.Header.Set("X-Service-Key", serviceKey)
	}

	mw.ServiceAuth()(c)
	return c, w
}

func TestServiceAuth(t *testing.T) {
	t.Run("valid key passes and sets service name", func(t *testing.T) {
		mw, enc := newServiceAuthTestContext(t)
		key, err := enc.Encrypt("scheduler:topsecret")
		if err != nil {
			t.Fatal(err)
		}

		c, _ := runServiceAuth(t, mw, key)
		if c.IsAborted() {
			t.Fatal("valid service key should pass")
		}
		if got := c.GetString("service_name"); got != "scheduler" {
			t.Errorf("service_name: got %q, want scheduler", got)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		mw, _ := newServiceAuthTestContext(t)

		c, w := runServiceAuth(t, mw, "")
		if !c.IsAborted() {
			t.Fatal("missing service key should abort")
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("undecryptable key rejected", func(t *testing.T) {
		mw, _ := newServiceAuthTestContext(t)

		c, w := runServiceAuth(t, mw, "not-a-ciphertext")
		if !c.IsAborted() {
			t.Fatal("undecryptable service key should abort")
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("unknown service rejected", func(t *testing.T) {
		mw, enc := newServiceAuthTestContext(t)
		key, err := enc.Encrypt("intruder:topsecret")
		if err != nil {
			t.Fatal(err)
		}

		c, _ := runServiceAuth(t, mw, key)
		if !c.IsAborted() {
			t.Fatal("unknown service should abort")
		}
	})

	t.Run("wrong key value rejected", func(t *testing.T) {
		mw, enc := newServiceAuthTestContext(t)
		key, err := enc.Encrypt("scheduler:wrong")
		if err != nil {
			t.Fatal(err)
		}

		c, _ := runServiceAuth(t, mw, key)
		if !c.IsAborted() {
			t.Fatal("mismatched key value should abort")
		}
	})
}
