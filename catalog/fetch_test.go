package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Success(t *testing.T) {
	f := NewFetcher(SourceFunc(func(ctx context.Context) ([]Car, error) {
		return twoCars(), nil
	}))
	assert.True(t, f.Loading())
	assert.Empty(t, f.Cars())

	f.Load(context.Background())
	assert.False(t, f.Loading())
	assert.Equal(t, "", f.Err())
	assert.NoError(t, f.Cause())
	assert.Equal(t, twoCars(), f.Cars())
}

func TestFetcher_NilResultBecomesEmpty(t *testing.T) {
	f := NewFetcher(SourceFunc(func(ctx context.Context) ([]Car, error) {
		return nil, nil
	}))
	f.Load(context.Background())
	assert.NotNil(t, f.Cars())
	assert.Empty(t, f.Cars())
}

func TestFetcher_Error(t *testing.T) {
	f := NewFetcher(SourceFunc(func(ctx context.Context) ([]Car, error) {
		return twoCars(), errors.New("connection refused")
	}))
	f.Load(context.Background())
	assert.False(t, f.Loading())
	assert.Equal(t, "connection refused", f.Err())
	assert.EqualError(t, f.Cause(), "connection refused")
	assert.Empty(t, f.Cars())
}

func TestFetcher_LaterSuccessClearsError(t *testing.T) {
	calls := 0
	f := NewFetcher(SourceFunc(func(ctx context.Context) ([]Car, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("timeout")
		}
		return twoCars(), nil
	}))
	f.Load(context.Background())
	require.Equal(t, "timeout", f.Err())
	f.Load(context.Background())
	assert.Equal(t, "", f.Err())
	assert.Len(t, f.Cars(), 2)
}

func newCatalogServer(t *testing.T, code int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_FetchCars(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","data":[
		{"id":1,"brand":"Toyota","model":"Camry","year":2020,"price":100000,
		 "fuel_types":["petrol"],"transmission":"auto","seats":5},
		{"id":2,"brand":"Honda","model":"Accord","year":2022,"price":200000,
		 "fuel_types":["petrol"],"transmission":"auto","seats":5}]}`)

	cars, err := NewHTTPSource(srv.URL, time.Second).FetchCars(context.Background())
	require.NoError(t, err)
	assert.Equal(t, twoCars(), cars)
}

func TestHTTPSource_Errors(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		contains string
		status   bool
	}{
		{"error envelope", http.StatusOK, `{"status":"error","message":"catalog offline"}`, "catalog offline", true},
		{"unknown status", http.StatusOK, `{"status":"pending"}`, `status "pending"`, true},
		{"non-2xx with envelope", http.StatusBadGateway, `{"status":"success","data":[]}`, "HTTP 502", true},
		{"non-2xx without json", http.StatusInternalServerError, `<html>oops</html>`, "HTTP 500", true},
		{"malformed body", http.StatusOK, `{"status":`, "could not read the catalog", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newCatalogServer(t, tt.code, tt.body)
			cars, err := NewHTTPSource(srv.URL, time.Second).FetchCars(context.Background())
			require.Error(t, err)
			assert.Nil(t, cars)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.status, errors.Is(err, ErrStatus))
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, 200*time.Millisecond).FetchCars(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not reach the catalog")
}

func TestHTTPSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHTTPSource("http://127.0.0.1:1/", time.Second).FetchCars(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_WithHTTPSource(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"error","message":"maintenance"}`)
	f := NewFetcher(NewHTTPSource(srv.URL, time.Second))
	f.Load(context.Background())
	assert.Contains(t, f.Err(), "maintenance")
	assert.Empty(t, f.Cars())
}
