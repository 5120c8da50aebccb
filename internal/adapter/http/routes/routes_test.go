package routes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"quote_relay/internal/adapter/http/handlers"
	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase"
	mock_interfaces "quote_relay/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memQuotes is an in-memory quote store keyed by id.
type memQuotes struct {
	mu     sync.Mutex
	quotes map[string]entities.Quote
}

func (m *memQuotes) GetByID(_ context.Context, id string) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quotes[id], nil
}

func (m *memQuotes) MarkViewed(_ context.Context, id string) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	if !ok {
		return entities.Quote{}, nil
	}
	q.Viewed = true
	q.ViewedAt = time.Now().UTC()
	m.quotes[id] = q
	return q, nil
}

// tokenTable maps raw bearer tokens to subjects.
type tokenTable map[string]string

func (t tokenTable) VerifyIDToken(_ context.Context, token string) (entities.Identity, error) {
	sub, ok := t[token]
	if !ok {
		return entities.Identity{}, errors.New("token expired")
	}
	return entities.Identity{Subject: sub}, nil
}

type harness struct {
	router  *gin.Engine
	store   *memQuotes
	gateway *mock_interfaces.MockIEmailGateway
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	store := &memQuotes{quotes: map[string]entities.Quote{
		"Q1": {ID: "Q1", Total: "250", CreatedBy: "U1"},
	}}
	gateway := mock_interfaces.NewMockIEmailGateway(ctrl)

	auth := usecase.NewAuthUseCase(tokenTable{"tok-u1": "U1", "tok-u2": "U2"})
	access := usecase.NewQuoteAccessUseCase(store)
	notifier := usecase.NewQuoteNotificationUseCase(access, store, gateway, "https://relay.valdicass.com")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := newRouter(logger, []string{"*"}, handlers.NewQuoteHandler(notifier), auth)
	return &harness{router: router, store: store, gateway: gateway}
}

func (h *harness) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestRouter_OwnerSendsQuote(t *testing.T) {
	h := newHarness(t)

	var sent entities.EmailMessage
	h.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg entities.EmailMessage) error {
		sent = msg
		return nil
	}).Times(1)

	w := h.do(http.MethodPost, PathSendQuoteEmail, "tok-u1", `{"quoteId":"Q1","clientEmail":"c@x.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Quote sent successfully."}`, w.Body.String())
	assert.Equal(t, "c@x.com", sent.To)
	assert.Contains(t, sent.TextBody, "250")
	assert.Contains(t, sent.HTMLBody, "https://relay.valdicass.com/trackOpen/Q1")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_NonOwnerIsForbidden(t *testing.T) {
	h := newHarness(t)
	h.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	w := h.do(http.MethodPost, PathSendQuoteEmail, "tok-u2", `{"quoteId":"Q1","clientEmail":"c@x.com"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You do not have permission to send this quote.")
}

func TestRouter_SendAuthFailures(t *testing.T) {
	h := newHarness(t)
	h.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	w := h.do(http.MethodPost, PathSendQuoteEmail, "", `{"quoteId":"Q1","clientEmail":"c@x.com"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, PathSendQuoteEmail, "expired", `{"quoteId":"Q1","clientEmail":"c@x.com"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden: Invalid token.")
}

func TestRouter_SendUnknownQuote(t *testing.T) {
	h := newHarness(t)
	h.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	w := h.do(http.MethodPost, PathSendQuoteEmail, "tok-u1", `{"quoteId":"missing","clientEmail":"c@x.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_TrackOpenMarksViewed(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/trackOpen/Q1", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	assert.Equal(t, 43, w.Body.Len())
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("GIF89a")))
	assert.True(t, h.store.quotes["Q1"].Viewed)
}

func TestRouter_QuoteViewedIsIdempotent(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 3; i++ {
		w := h.do(http.MethodPost, PathQuoteViewed, "", `{"quoteId":"Q1"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, h.store.quotes["Q1"].Viewed)
	}

	w := h.do(http.MethodPost, PathQuoteViewed, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Missing quoteId"`)
}

func TestRouter_PublicSurfaces(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quote_relay_http_requests_total")
}
