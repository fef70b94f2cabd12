package testutil

import "github.com/prilive-com/tgbot/tg"

// Test constants for consistent test data.
const (
	// TestAPIKey is a bot API key in the form it is embedded in request paths.
	TestAPIKey = "bot123456789:ABCdefGHIjklMNOpqrsTUVwxyz"

	// TestChatID is a test chat ID.
	TestChatID = int64(123456789)

	// TestUserID is a test user ID.
	TestUserID = int64(987654321)

	// TestBotID is a test bot ID.
	TestBotID = int64(123456789)

	// TestBotUsername is a test bot username.
	TestBotUsername = "testbot"
)

// MethodPath returns the request path of an API method for TestAPIKey.
func MethodPath(method string) string {
	return "/" + TestAPIKey + "/" + method
}

// TestUser returns a test user fixture.
func TestUser() *tg.User {
	return &tg.User{
		ID:        TestUserID,
		IsBot:     false,
		FirstName: "Test",
		LastName:  "User",
		Username:  "testuser",
	}
}

// TestChat returns a test private chat fixture.
func TestChat() *tg.Chat {
	return &tg.Chat{
		ID:        TestChatID,
		Type:      "private",
		FirstName: "Test",
		LastName:  "User",
		Username:  "testuser",
	}
}
