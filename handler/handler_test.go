package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharemail/handler"
	"github.com/dmitrymomot/sharemail/pkg/binder"
	"github.com/dmitrymomot/sharemail/pkg/logger"
)

type payload = map[string]any

func decodeEnvelope(t *testing.T, body []byte) handler.Envelope {
	t.Helper()
	var env handler.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestWrap(t *testing.T) {
	t.Parallel()

	errHandler := handler.NewErrorHandler(logger.Discard())

	echo := handler.HandlerFunc[handler.Context, payload](func(_ handler.Context, req payload) handler.Response {
		return handler.OK("echo", req)
	})
	h := handler.Wrap(echo,
		handler.WithBinders[handler.Context, payload](binder.JSON()),
		handler.WithErrorHandler[handler.Context, payload](errHandler),
	)

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"a":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Equal(t, "echo", env.Message)
		assert.Equal(t, map[string]any{"a": "b"}, env.Data)
	})

	t.Run("binder error reaches error handler", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, decodeEnvelope(t, w.Body.Bytes()).Success)
	})
}

func TestWrap_FailAndNil(t *testing.T) {
	t.Parallel()

	var got error
	capture := func(ctx handler.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}

	boom := errors.New("boom")
	failing := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.Fail(boom)
		}),
		handler.WithErrorHandler[handler.Context, struct{}](capture),
	)

	w := httptest.NewRecorder()
	failing.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.ErrorIs(t, got, boom)

	nilHandler := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return nil
		}),
		handler.WithErrorHandler[handler.Context, struct{}](capture),
	)
	nilHandler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrNilResponse)
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			order = append(order, "handler")
			return handler.JSON(map[string]string{"ok": "yes"}, handler.WithJSONStatus(http.StatusCreated))
		}),
		handler.WithDecorators(mark("outer"), mark("inner")),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":"yes"}`, w.Body.String())
}

func TestDefaultErrorHandler(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return handler.Fail(handler.ErrNotFound)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(contextWithValue(req, key{}, "v"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, req)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
}
