package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rcp_tracker/internal/domain/entities"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

func newIdentityRouter(guards ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Identity()}, guards...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"operator_id": actor.OperatorID, "role": actor.Role, "acting": actor.ActingAsWorker})
	})
	r.GET("/probe", handlers...)
	return r
}

func doProbe(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing operator", func(t *testing.T) {
		w := doProbe(newIdentityRouter(), nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		w := doProbe(newIdentityRouter(), map[string]string{HeaderOperatorID: "op-1", HeaderOperatorRole: "root"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad acting flag", func(t *testing.T) {
		w := doProbe(newIdentityRouter(), map[string]string{HeaderOperatorID: "op-1", HeaderActingAsWorker: "maybe"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("defaults to operator", func(t *testing.T) {
		w := doProbe(newIdentityRouter(), map[string]string{HeaderOperatorID: " op-1 "})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"operator_id":"op-1"`) || !strings.Contains(w.Body.String(), `"role":"operator"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestRequireWorker(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newIdentityRouter(RequireWorker())

	if w := doProbe(r, map[string]string{HeaderOperatorID: "op-1"}); w.Code != http.StatusOK {
		t.Fatalf("operator: expected 200, got %d", w.Code)
	}
	if w := doProbe(r, map[string]string{HeaderOperatorID: "adm-1", HeaderOperatorRole: "admin"}); w.Code != http.StatusForbidden {
		t.Fatalf("admin not acting: expected 403, got %d", w.Code)
	}
	if w := doProbe(r, map[string]string{HeaderOperatorID: "adm-1", HeaderOperatorRole: "admin", HeaderActingAsWorker: "true"}); w.Code != http.StatusOK {
		t.Fatalf("admin acting: expected 200, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newIdentityRouter(RequireAdmin())

	if w := doProbe(r, map[string]string{HeaderOperatorID: "op-1"}); w.Code != http.StatusForbidden {
		t.Fatalf("operator: expected 403, got %d", w.Code)
	}
	if w := doProbe(r, map[string]string{HeaderOperatorID: "adm-1", HeaderOperatorRole: "ADMIN"}); w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Formatter: log.LogfmtFormatter})

	r := gin.New()
	r.Use(WithActor(entities.Actor{OperatorID: "op-7", Role: entities.RoleOperator}), RequestLogger(logger))
	r.GET("/v1/tasks/:task_id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/v1/tasks/t-1", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"status=404", "path=/v1/tasks/:task_id", "operator_id=op-7", "level=warn"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
