package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusUnprocessableEntity, wantErr: ErrUnprocessableEntity},
		{status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := mapHTTPError(responseWithStatus(t, tt.status, "details"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "details")
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(responseWithStatus(t, http.StatusOK, "[]")))
}

func TestMapHTTPError_UnknownStatusUsesStatusText(t *testing.T) {
	err := mapHTTPError(responseWithStatus(t, http.StatusTeapot, ""))
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

func TestMapHTTPError_ProviderEnvelope(t *testing.T) {
	body := `{"message":"The given data was invalid.","errors":{"to.postal_code":["CEP inválido"],"from.postal_code":["obrigatório","inválido"]}}`

	err := mapHTTPError(responseWithStatus(t, http.StatusUnprocessableEntity, body))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnprocessableEntity)
	assert.Equal(t,
		"unprocessable entity: The given data was invalid.; from.postal_code: obrigatório, inválido; to.postal_code: CEP inválido",
		err.Error())
}

func TestErrorDetails(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "plain text", body: "  Unauthenticated.\n", want: "Unauthenticated."},
		{name: "message only", body: `{"message":"Unauthenticated."}`, want: "Unauthenticated."},
		{name: "unrelated json", body: `{"status":"down"}`, want: `{"status":"down"}`},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetails([]byte(tt.body)))
		})
	}
}
