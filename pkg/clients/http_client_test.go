package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClientPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, "payload", string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Key":"ok"}`))
	}))
	defer server.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Content-Type", "image/png")

	code, body, err := client.Post(context.Background(), server.URL, headers, strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"Key":"ok"}`, string(body))
}

func TestHTTPClientPostCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPClient().Post(ctx, server.URL, nil, http.NoBody)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClientSetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Post(gomock.Any(), "http://storage", gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte("{}"), nil)

	client := NewHTTPClient()
	client.SetClient(mock)

	code, _, err := client.Post(context.Background(), "http://storage", nil, http.NoBody)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}
