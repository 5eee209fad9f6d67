package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout_relay/internal/adapter/http/handlers/mocks"
	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.GET("/webhook", h.Health)
	r.POST("/webhook", h.Receive)
	return r
}

func TestWebhookHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl))
	h.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	w := httptest.NewRecorder()
	newWebhookRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" || body["message"] == "" || body["timestamp"] != "2026-10-16T12:00:00Z" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes headers and notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.WebhookNotification, hdr entities.SignatureHeaders) (entities.WebhookResult, error) {
				if n.Type != "payment" || n.Action != "payment.updated" || string(n.Data.ID) != "123456" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				if hdr.Signature != "ts=1,v1=abc" || hdr.RequestID != "req-1" {
					t.Fatalf("unexpected headers: %+v", hdr)
				}
				return entities.WebhookResult{Status: "success", PaymentID: "123456", Type: "payment"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{"type":"payment","action":"payment.updated","data":{"id":123456}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Signature", "ts=1,v1=abc")
		req.Header.Set("X-Request-Id", "req-1")
		w := httptest.NewRecorder()
		newWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "success" || body["payment_id"] != "123456" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query string fills the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.WebhookNotification, _ entities.SignatureHeaders) (entities.WebhookResult, error) {
				if string(n.Data.ID) != "777" || n.Type != "payment" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return entities.WebhookResult{Status: "success", PaymentID: "777"}, nil
			})

		w := doJSON(newWebhookRouter(h), http.MethodPost, "/webhook?data.id=777&type=payment", `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty body uses the query string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		uc.EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.WebhookNotification, _ entities.SignatureHeaders) (entities.WebhookResult, error) {
				if string(n.Data.ID) != "888" || n.Type != "payment" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return entities.WebhookResult{Status: "success", PaymentID: "888", Type: "payment"}, nil
			})

		w := doJSON(newWebhookRouter(h), http.MethodPost, "/webhook?data.id=888&type=payment", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl))

		w := doJSON(newWebhookRouter(h), http.MethodPost, "/webhook", `not json`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrMissingSignature, http.StatusUnauthorized},
		{usecase.ErrInvalidSignatureFormat, http.StatusUnauthorized},
		{usecase.ErrSignatureMismatch, http.StatusUnauthorized},
		{usecase.ErrMissingPaymentID, http.StatusBadRequest},
		{fmt.Errorf("%w: status 404", usecase.ErrPaymentDetailsNotFound), http.StatusBadRequest},
		{fmt.Errorf("%w: ddb down", usecase.ErrWebhookDispatchFailed), http.StatusInternalServerError},
		{fmt.Errorf("%w: throttled", usecase.ErrWebhookDedupUnavailable), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIWebhookUseCase(ctrl)
			h := NewWebhookHandler(uc)
			uc.EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.WebhookResult{}, tc.err)

			w := doJSON(newWebhookRouter(h), http.MethodPost, "/webhook", `{"type":"payment","data":{"id":"1"}}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if tc.want == http.StatusInternalServerError && bytes.Contains(w.Body.Bytes(), []byte("ddb")) {
				t.Fatalf("internal detail leaked: %s", w.Body.String())
			}
		})
	}
}
