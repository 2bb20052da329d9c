package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/mock"
	"github.com/MKhiriev/go-field-crypt/internal/service"
	"github.com/MKhiriev/go-field-crypt/internal/store"
	"github.com/MKhiriev/go-field-crypt/models"
)

func newTestRouter(t *testing.T) (http.Handler, *mock.MockMessageService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	messages := mock.NewMockMessageService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	h := NewHandler(&service.Services{
		AppInfoService: appInfo,
		MessageService: messages,
	}, logger.Nop())

	return h.Init(), messages
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mock.MockMessageService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"text":"hello"}`,
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Create(gomock.Any(), "hello").
					Return(models.Message{ID: 1, Text: "hello"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1,"text":"hello"}`,
		},
		{
			name:       "malformed JSON",
			body:       `{"text":`,
			setup:      func(m *mock.MockMessageService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"text":""}`,
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Create(gomock.Any(), "").
					Return(models.Message{}, fmt.Errorf("%w: empty text", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided: empty text",
		},
		{
			name: "missing key",
			body: `{"text":"hello"}`,
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Create(gomock.Any(), "hello").Return(models.Message{}, service.ErrMissingKey)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
		{
			name: "database failure",
			body: `{"text":"hello"}`,
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Create(gomock.Any(), "hello").
					Return(models.Message{}, fmt.Errorf("%w: disk I/O error", store.ErrCommitingTransaction))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, messages := newTestRouter(t)
			tt.setup(messages)

			rec := serve(router, http.MethodPost, "/api/messages", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestCreateMessage_TrailingSlash(t *testing.T) {
	router, messages := newTestRouter(t)
	messages.EXPECT().Create(gomock.Any(), "hi").Return(models.Message{ID: 2, Text: "hi"}, nil)

	rec := serve(router, http.MethodPost, "/api/messages/", `{"text":"hi"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(m *mock.MockMessageService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "found",
			target: "/api/messages/7",
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(models.Message{ID: 7, Text: "Test"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":7,"text":"Test"}`,
		},
		{
			name:       "id is not a number",
			target:     "/api/messages/abc",
			setup:      func(m *mock.MockMessageService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			target: "/api/messages/42",
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Get(gomock.Any(), int64(42)).Return(models.Message{}, service.ErrMessageNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "message not found",
		},
		{
			name:   "non-positive id rejected by service",
			target: "/api/messages/0",
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Get(gomock.Any(), int64(0)).
					Return(models.Message{}, fmt.Errorf("%w: invalid id", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "strict transform failure",
			target: "/api/messages/3",
			setup: func(m *mock.MockMessageService) {
				m.EXPECT().Get(gomock.Any(), int64(3)).
					Return(models.Message{}, fmt.Errorf("%w: invalid padding", service.ErrTransformFailed))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, messages := newTestRouter(t)
			tt.setup(messages)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestListDecryptedMessages(t *testing.T) {
	router, messages := newTestRouter(t)
	messages.EXPECT().ListDecrypted(gomock.Any()).Return([]models.Message{
		{ID: 1, Text: "one"},
		{ID: 2, Text: "two"},
	}, nil)

	rec := serve(router, http.MethodGet, "/api/messages/decrypted", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"text":"one"},{"id":2,"text":"two"}]`, rec.Body.String())
}

func TestListStoredMessages(t *testing.T) {
	t.Run("ciphertext as stored", func(t *testing.T) {
		router, messages := newTestRouter(t)
		messages.EXPECT().ListStored(gomock.Any()).Return([]models.Message{
			{ID: 1, Text: "FBF/QXVD5rSqyaIIMIunUbcLs7rHJOWLBvwrVZZ1qGI="},
		}, nil)

		rec := serve(router, http.MethodGet, "/api/messages", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"text":"FBF/QXVD5rSqyaIIMIunUbcLs7rHJOWLBvwrVZZ1qGI="}]`, rec.Body.String())
	})

	t.Run("empty table is an empty array", func(t *testing.T) {
		router, messages := newTestRouter(t)
		messages.EXPECT().ListStored(gomock.Any()).Return([]models.Message{}, nil)

		rec := serve(router, http.MethodGet, "/api/messages", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		router, messages := newTestRouter(t)
		messages.EXPECT().ListStored(gomock.Any()).Return(nil, errors.New("boom"))

		rec := serve(router, http.MethodGet, "/api/messages", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestMessages_PassesRequestContext(t *testing.T) {
	router, messages := newTestRouter(t)
	messages.EXPECT().ListDecrypted(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Message, error) {
		require.NotNil(t, ctx)
		return nil, ctx.Err()
	})

	rec := serve(router, http.MethodGet, "/api/messages/decrypted", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestRoutes_Unknown(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/unknown", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(router, http.MethodDelete, "/api/messages/1", "").Code)
}
