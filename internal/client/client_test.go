package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/importer"
	"github.com/grachmannico95/casedesk-be/internal/validation"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
	"github.com/grachmannico95/casedesk-be/pkg/retry"
	"github.com/grachmannico95/casedesk-be/pkg/token"
)

func fastRetry() Option {
	return WithRetry(retry.WithMaxAttempts(3), retry.WithBaseDelay(time.Millisecond))
}

func TestClient_ImportCases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cases/import", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body struct {
			Cases []domain.CaseRecord `json:"cases"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Cases, 2)

		_ = json.NewEncoder(w).Encode(domain.ImportResult{Success: 2})
	}))
	defer srv.Close()

	c := New(srv.URL, nil, fastRetry())
	result, err := c.ImportCases(context.Background(), "tok", []domain.CaseRecord{{CaseID: "C-1"}, {CaseID: "C-2"}})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
}

func TestClient_ImportCases_ServerErrorIsFinal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, fastRetry())
	_, err := c.ImportCases(context.Background(), "tok", []domain.CaseRecord{{CaseID: "C-1"}})

	assert.ErrorIs(t, err, domain.ErrSubmission)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ImportCases_TransportErrorIsFinal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, nil, fastRetry())
	_, err := c.ImportCases(context.Background(), "tok", []domain.CaseRecord{{CaseID: "C-1"}})

	assert.ErrorIs(t, err, domain.ErrSubmission)
}

func TestSession_SubmitThroughClient_NotRepeated(t *testing.T) {
	var calls, stored atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Cases []domain.CaseRecord `json:"cases"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		stored.Add(int32(len(body.Cases)))
		if calls.Add(1) == 1 {
			// records were saved but the answer is lost
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.ImportResult{Success: len(body.Cases)})
	}))
	defer srv.Close()

	v := validation.New(validation.WithClock(func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }))
	session := importer.NewSession(importer.NewCSVParser(), v, New(srv.URL, nil, fastRetry()), nil, logger.NewNop(), importer.SessionConfig{})
	csvData := "case_id,applicant_name,dob,email,phone,category,priority\n" +
		"C-1,Jane Doe,1990-04-12,jane@example.com,+6281234567890,TAX,HIGH\n" +
		"C-2,John Roe,1985-01-30,,,PERMIT,\n"
	_, err := session.Load(context.Background(), "cases.csv", []byte(csvData))
	require.NoError(t, err)

	_, err = session.Submit(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrSubmission)
	assert.Equal(t, importer.StatePreview, session.State())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(2), stored.Load())
}

func TestClient_UnauthorizedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"not authorized"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, fastRetry())
	_, err := c.ImportCases(context.Background(), "tok", []domain.CaseRecord{{CaseID: "C-1"}})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ClientErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid cases data"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, fastRetry())
	_, err := c.ImportCases(context.Background(), "tok", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Invalid cases data", statusErr.Message)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"user":{"id":"u-1","email":"test@example.com","name":"Test User","role":"ADMIN"},"token":"abc"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, nil).Login(context.Background(), "test@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, "Test User", resp.User.Name)
}

func TestExpiryValidator(t *testing.T) {
	signed, expiresAt, err := token.NewManager("secret", time.Hour).Generate("u-1", "test@example.com", "ADMIN")
	require.NoError(t, err)

	assert.NoError(t, ExpiryValidator{}.ValidateToken(context.Background(), signed))

	late := ExpiryValidator{Now: func() time.Time { return expiresAt.Add(time.Minute) }}
	assert.ErrorIs(t, late.ValidateToken(context.Background(), signed), token.ErrExpiredToken)
	assert.Error(t, ExpiryValidator{}.ValidateToken(context.Background(), "garbage"))
}

func TestClient_LoginRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"user":{"id":"u-1"},"token":"abc"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, nil, fastRetry()).Login(context.Background(), "test@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_LoginRejectedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"not authorized"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil, fastRetry()).Login(context.Background(), "test@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(1), calls.Load())
}
