package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"wallet-service/internal/model"
	"wallet-service/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testWalletID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func setupRouter(t *testing.T) (*mocks.WalletService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mockSvc := mocks.NewWalletService(t)
	h := NewHandler(mockSvc, nil, zerolog.Nop())

	router, err := h.SetupRoutes("1")
	require.NoError(t, err)
	return mockSvc, router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_CreateWallet_Created(t *testing.T) {
	mockSvc, router := setupRouter(t)

	mockSvc.On("CreateWallet", mock.Anything).Return(&model.Wallet{
		ID:      testWalletID,
		Balance: decimal.Zero,
	}, nil)

	w := doRequest(router, http.MethodPost, "/v1/wallet/create", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"walletId":"550e8400-e29b-41d4-a716-446655440000","amount":"0.00"}`, w.Body.String())
}

func TestHandler_UpdateWallet_Success(t *testing.T) {
	mockSvc, router := setupRouter(t)

	mockSvc.On("UpdateWallet", mock.Anything, mock.MatchedBy(func(req *model.WalletOperationRequest) bool {
		return req.WalletID == testWalletID &&
			req.OperationType == model.OperationDeposit &&
			req.Amount != nil && req.Amount.Equal(decimal.RequireFromString("25.50"))
	})).Return(&model.Wallet{
		ID:      testWalletID,
		Balance: decimal.RequireFromString("25.5"),
	}, nil)

	body := `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"DEPOSIT","amount":25.50}`
	w := doRequest(router, http.MethodPost, "/v1/wallet", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"walletId":"550e8400-e29b-41d4-a716-446655440000","amount":"25.50"}`, w.Body.String())
}

func TestHandler_UpdateWallet_AmountAsString(t *testing.T) {
	mockSvc, router := setupRouter(t)

	mockSvc.On("UpdateWallet", mock.Anything, mock.MatchedBy(func(req *model.WalletOperationRequest) bool {
		return req.Amount.Equal(decimal.RequireFromString("10"))
	})).Return(&model.Wallet{ID: testWalletID, Balance: decimal.RequireFromString("15.50")}, nil)

	body := `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"WITHDRAW","amount":"10.00"}`
	w := doRequest(router, http.MethodPost, "/v1/wallet", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateWallet_FieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{
			name:  "missing wallet id",
			body:  `{"operationType":"DEPOSIT","amount":"1.00"}`,
			field: "walletId",
			msg:   "is required",
		},
		{
			name:  "missing operation type",
			body:  `{"walletId":"550e8400-e29b-41d4-a716-446655440000","amount":"1.00"}`,
			field: "operationType",
			msg:   "is required",
		},
		{
			name:  "missing amount",
			body:  `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"DEPOSIT"}`,
			field: "amount",
			msg:   "is required",
		},
		{
			name:  "amount below minimum",
			body:  `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"DEPOSIT","amount":"0.001"}`,
			field: "amount",
			msg:   "must be at least 0.01",
		},
		{
			name:  "negative amount",
			body:  `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"WITHDRAW","amount":-5}`,
			field: "amount",
			msg:   "must be at least 0.01",
		},
		{
			name:  "too many decimals",
			body:  `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"DEPOSIT","amount":"1.234"}`,
			field: "amount",
			msg:   "must have at most 2 decimal places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setupRouter(t)

			w := doRequest(router, http.MethodPost, "/v1/wallet", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, "VALIDATION_ERROR", resp.Code)
			assert.Equal(t, http.StatusBadRequest, resp.Status)
			require.NotNil(t, resp.Details)
			assert.Equal(t, "/v1/wallet", resp.Details.URL)
			assert.Contains(t, resp.Details.Fields[tt.field], tt.msg)
			assert.Contains(t, resp.Message, tt.field)
		})
	}
}

func TestHandler_UpdateWallet_MalformedPayload(t *testing.T) {
	for name, body := range map[string]string{
		"broken json":    `{"walletId":`,
		"bad uuid":       `{"walletId":"not-a-uuid","operationType":"DEPOSIT","amount":"1.00"}`,
		"amount as bool": `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"DEPOSIT","amount":true}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, router := setupRouter(t)

			w := doRequest(router, http.MethodPost, "/v1/wallet", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, "INVALID_PAYLOAD", resp.Code)
			assert.Equal(t, "invalid JSON payload", resp.Message)
		})
	}
}

func TestHandler_UpdateWallet_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "lock conflict is retryable conflict",
			err:        model.NewLockConflictError(errors.New("canceling statement due to lock timeout")),
			wantStatus: http.StatusConflict,
			wantCode:   "RESOURCE_BUSY",
			wantMsg:    "resource is busy, retry the request later",
		},
		{
			name:       "wallet not found",
			err:        model.NewNotFoundError(model.EntityWallet, testWalletID),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Wallet with id 550e8400-e29b-41d4-a716-446655440000 does not exist",
		},
		{
			name:       "insufficient funds",
			err:        model.NewInsufficientFundsError(testWalletID, decimal.RequireFromString("100")),
			wantStatus: http.StatusConflict,
			wantCode:   "INSUFFICIENT_FUNDS",
			wantMsg:    "insufficient funds in wallet 550e8400-e29b-41d4-a716-446655440000 to withdraw 100.00",
		},
		{
			name:       "invalid operation type",
			err:        model.NewInvalidOperationTypeError("TRANSFER"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_OPERATION_TYPE",
			wantMsg:    `unknown operation type: "TRANSFER"`,
		},
		{
			name:       "storage constraint",
			err:        model.NewStorageError(errors.New(`new row violates check constraint "wallet_balance_non_negative"`)),
			wantStatus: http.StatusBadRequest,
			wantCode:   "STORAGE_ERROR",
			wantMsg:    "failed to save data",
		},
		{
			name:       "unclassified never leaks internals",
			err:        errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc, router := setupRouter(t)
			mockSvc.On("UpdateWallet", mock.Anything, mock.Anything).Return(nil, tt.err)

			body := `{"walletId":"550e8400-e29b-41d4-a716-446655440000","operationType":"TRANSFER","amount":"100.00"}`
			w := doRequest(router, http.MethodPost, "/v1/wallet", body)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
		})
	}
}

func TestHandler_GetBalance_Success(t *testing.T) {
	mockSvc, router := setupRouter(t)

	mockSvc.On("GetBalance", mock.Anything, testWalletID).Return(&model.Wallet{
		ID:      testWalletID,
		Balance: decimal.RequireFromString("15.5"),
	}, nil)

	w := doRequest(router, http.MethodGet, "/v1/wallets/"+testWalletID.String(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"walletId":"550e8400-e29b-41d4-a716-446655440000","amount":"15.50"}`, w.Body.String())
}

func TestHandler_GetBalance_NotFound(t *testing.T) {
	mockSvc, router := setupRouter(t)

	mockSvc.On("GetBalance", mock.Anything, testWalletID).
		Return(nil, model.NewNotFoundError(model.EntityWallet, testWalletID))

	w := doRequest(router, http.MethodGet, "/v1/wallets/"+testWalletID.String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "/v1/wallets/"+testWalletID.String(), resp.Details.URL)
}

func TestHandler_GetBalance_MalformedID(t *testing.T) {
	_, router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/v1/wallets/12345", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, []string{"must be a valid UUID"}, resp.Details.Fields["walletId"])
}

func TestHandler_UnversionedPathNotRouted(t *testing.T) {
	_, router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/wallet/create", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RequestIDEchoed(t *testing.T) {
	mockSvc, router := setupRouter(t)
	mockSvc.On("CreateWallet", mock.Anything).Return(&model.Wallet{ID: testWalletID}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/v1/wallet/create", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestHandler_PanicReturnsGenericError(t *testing.T) {
	mockSvc, router := setupRouter(t)
	mockSvc.On("CreateWallet", mock.Anything).Run(func(mock.Arguments) {
		panic("nil map write in wallet service")
	}).Return(nil, nil)

	w := doRequest(router, http.MethodPost, "/v1/wallet/create", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "internal service error", resp.Message)
	assert.NotContains(t, w.Body.String(), "nil map")
}

type stubHealth struct{ err error }

func (s stubHealth) Ping(context.Context) error { return s.err }

func TestHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for name, tc := range map[string]struct {
		health HealthChecker
		want   int
	}{
		"no checker":    {nil, http.StatusOK},
		"database up":   {stubHealth{}, http.StatusOK},
		"database down": {stubHealth{errors.New("connection refused")}, http.StatusServiceUnavailable},
	} {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(mocks.NewWalletService(t), tc.health, zerolog.Nop())
			router, err := h.SetupRoutes("1")
			require.NoError(t, err)

			w := doRequest(router, http.MethodGet, "/health", "")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	_, router := setupRouter(t)
	doRequest(router, http.MethodGet, "/health", "")

	w := doRequest(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wallet_http_requests_total")
}
