package testutil_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbot/internal/testutil"
)

func TestMockServer_CapturesRequests(t *testing.T) {
	server := testutil.NewMockServer(t)

	resp, err := http.Post(server.BaseURL()+"/test?x=1", "application/json", bytes.NewReader([]byte(`{"a":1}`)))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, server.CaptureCount())

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertMethod(t, "POST")
	cap.AssertPath(t, "/test")
	cap.AssertQuery(t, "x", "1")
	assert.Equal(t, "x=1", cap.RawQuery)
	assert.Equal(t, int64(7), cap.ContentLength)
	cap.AssertJSONField(t, "a", float64(1))
	cap.AssertJSONFieldAbsent(t, "b")
}

func TestMockServer_CustomHandler(t *testing.T) {
	server := testutil.NewMockServer(t)

	server.On(testutil.MethodPath("sendMessage"), func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 42)
	})

	resp, err := http.Post(server.BaseURL()+testutil.MethodPath("sendMessage"), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope testutil.TelegramEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.True(t, envelope.OK)
	result, ok := envelope.Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), result["message_id"])
}

func TestMockServer_DefaultSuccess(t *testing.T) {
	server := testutil.NewMockServer(t)

	resp, err := http.Get(server.BaseURL() + "/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope testutil.TelegramEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.True(t, envelope.OK)
	assert.Equal(t, true, envelope.Result)
}

func TestMockServer_ErrorReply(t *testing.T) {
	server := testutil.NewMockServer(t)

	server.On("/fail", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyBadRequest(w, "chat not found")
	})

	resp, err := http.Post(server.BaseURL()+"/fail", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope testutil.TelegramEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.False(t, envelope.OK)
	assert.Equal(t, 400, envelope.ErrorCode)
	assert.Equal(t, "Bad Request: chat not found", envelope.Description)
}

func TestMockServer_ResetCaptures(t *testing.T) {
	server := testutil.NewMockServer(t)

	for _, p := range []string{"/test1", "/test2"} {
		resp, err := http.Get(server.BaseURL() + p)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, 2, server.CaptureCount())

	server.ResetCaptures()
	assert.Equal(t, 0, server.CaptureCount())
	assert.Nil(t, server.LastCapture())
}

func TestMockServer_CountsConnections(t *testing.T) {
	server := testutil.NewMockServer(t)

	client := server.Client()
	for range 3 {
		resp, err := client.Get(server.BaseURL() + "/ping")
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	assert.Equal(t, int64(1), server.NewConnections())
}

func TestMethodPath(t *testing.T) {
	assert.Equal(t, "/"+testutil.TestAPIKey+"/getMe", testutil.MethodPath("getMe"))
}

func TestFakePool(t *testing.T) {
	pool := testutil.NewFakePool(testutil.RespondOK(map[string]any{"id": 1}))
	pool.FailPath("/broken")

	req, err := http.NewRequest(http.MethodPost, "http://fake/x/work", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	resp, err := pool.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"result":{"id":1}}`, string(body))

	req, err = http.NewRequest(http.MethodGet, "http://fake/x/broken", nil)
	require.NoError(t, err)
	_, err = pool.Do(req)
	assert.ErrorIs(t, err, testutil.ErrFakeNetwork)

	assert.Equal(t, 2, pool.CallCount())
	assert.Equal(t, []byte(`{}`), pool.Bodies()[0])
}

func TestFakeTransport(t *testing.T) {
	ft := testutil.NewFakeTransport("https://fake")

	resp, err := ft.Post(context.Background(), "/k/sendMessage", map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.True(t, resp.OK)

	ft.Err = errors.New("boom")
	_, err = ft.Get(context.Background(), "https://fake/k/getWebhookInfo")
	require.Error(t, err)

	calls := ft.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[0].HTTPMethod)
	assert.Equal(t, "/k/sendMessage", calls[0].Target)
	assert.Equal(t, http.MethodGet, calls[1].HTTPMethod)
	assert.Equal(t, 2, ft.CallCount())
	assert.Equal(t, "https://fake", ft.BaseURL())
}
