// Package testutil provides testing utilities for tgbot.
//
// This package is intended for internal testing only and should not be imported
// by external packages.
//
// # Mock Telegram Server
//
// MockTelegramServer provides a mock Telegram Bot API server for testing:
//
//	server := testutil.NewMockServer(t)
//	server.On(testutil.MethodPath("sendMessage"), func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyMessage(w, 123)
//	})
//	// Use server.BaseURL() as the API base URL
//
// # Request Capture
//
// All requests are automatically captured and can be inspected:
//
//	cap := server.LastCapture()
//	cap.AssertMethod(t, "POST")
//	cap.AssertJSONField(t, "chat_id", float64(123))
//
// # Fakes
//
// FakePool stands in for the connection pool and FakeTransport for the
// whole transport; both count calls:
//
//	pool := testutil.NewFakePool(testutil.RespondOK(true))
//	assert.Equal(t, 0, pool.CallCount())
package testutil
