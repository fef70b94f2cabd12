package tgbot_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbot"
	"github.com/prilive-com/tgbot/internal/testutil"
	"github.com/prilive-com/tgbot/tg"
)

func TestSendMessage_Defaults(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.On(testutil.MethodPath("sendMessage"), func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 42)
	})

	bot := testutil.NewTestBot(t, server.BaseURL())

	resp, err := bot.SendMessage(context.Background(), testutil.TestChatID, "hello")
	require.NoError(t, err)
	require.True(t, resp.OK)

	var msg tg.Message
	require.NoError(t, resp.Decode(&msg))
	assert.Equal(t, 42, msg.MessageID)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertMethod(t, http.MethodPost)
	cap.AssertPath(t, testutil.MethodPath("sendMessage"))
	cap.AssertHeader(t, "Content-Type", "application/json;charset=UTF-8")
	cap.AssertJSONField(t, "chat_id", float64(testutil.TestChatID))
	cap.AssertJSONField(t, "text", "hello")
	cap.AssertJSONField(t, "parse_mode", "html")
	cap.AssertJSONField(t, "disable_web_page_preview", false)
	cap.AssertJSONField(t, "disable_notification", false)
	cap.AssertJSONFieldNull(t, "reply_to_message_id")
	cap.AssertJSONFieldAbsent(t, "reply_markup")
}

func TestSendMessage_Options(t *testing.T) {
	server := testutil.NewMockServer(t)
	bot := testutil.NewTestBot(t, server.BaseURL())

	_, err := bot.SendMessage(context.Background(), "@channel", "*hi*",
		tgbot.WithParseMode(tg.ParseModeMarkdownV2),
		tgbot.WithDisableWebPagePreview(true),
		tgbot.Silent(),
		tgbot.WithReplyTo(99),
	)
	require.NoError(t, err)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertJSONField(t, "chat_id", "@channel")
	cap.AssertJSONField(t, "parse_mode", "MarkdownV2")
	cap.AssertJSONField(t, "disable_web_page_preview", true)
	cap.AssertJSONField(t, "disable_notification", true)
	cap.AssertJSONField(t, "reply_to_message_id", float64(99))
}

func TestPost_ContentLengthMultiByte(t *testing.T) {
	server := testutil.NewMockServer(t)
	bot := testutil.NewTestBot(t, server.BaseURL())

	text := "Привет, мир 👋🏽 こんにちは"
	require.Greater(t, len(text), utf8.RuneCountInString(text))

	_, err := bot.SendMessage(context.Background(), testutil.TestChatID, text)
	require.NoError(t, err)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	assert.Equal(t, int64(len(cap.Body)), cap.ContentLength)
	cap.AssertHeader(t, "Content-Length", strconv.Itoa(len(cap.Body)))
	cap.AssertJSONField(t, "text", text)
}

func TestSendButton_InlineKeyboard(t *testing.T) {
	server := testutil.NewMockServer(t)
	bot := testutil.NewTestBot(t, server.BaseURL())

	kb := tg.MakeInlineKeyboardMarkup(
		tg.ButtonSpec{Text: "A", Payload: "pA"},
		tg.ButtonRow{{Text: "B", Payload: "pB"}, {Text: "C", Payload: "pC"}},
	)

	_, err := bot.SendButton(context.Background(), testutil.TestChatID, kb, "Pick one")
	require.NoError(t, err)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertPath(t, testutil.MethodPath("sendMessage"))
	cap.AssertJSONField(t, "text", "Pick one")
	cap.AssertJSONField(t, "parse_mode", "html")

	var body struct {
		ReplyMarkup json.RawMessage `json:"reply_markup"`
	}
	cap.BodyJSON(t, &body)
	assert.JSONEq(t, `{"inline_keyboard":[
		[{"text":"A","callback_data":"pA"}],
		[{"text":"B","callback_data":"pB"},{"text":"C","callback_data":"pC"}]
	]}`, string(body.ReplyMarkup))
}

func TestSendButton_ReplyKeyboard(t *testing.T) {
	server := testutil.NewMockServer(t)
	bot := testutil.NewTestBot(t, server.BaseURL())

	kb := tg.MakeReplyKeyboardMarkup([][]tg.KeyboardButton{
		tg.TextButtons("Yes"),
		tg.TextButtons("No"),
	})

	_, err := bot.SendButton(context.Background(), testutil.TestChatID, kb, "Sure?")
	require.NoError(t, err)

	var body struct {
		ReplyMarkup json.RawMessage `json:"reply_markup"`
	}
	server.LastCapture().BodyJSON(t, &body)
	assert.JSONEq(t, `{"keyboard":[[{"text":"Yes"}],[{"text":"No"}]],"resize_keyboard":true,"one_time_keyboard":false}`,
		string(body.ReplyMarkup))
}

func TestMethods_Payloads(t *testing.T) {
	ctx := context.Background()
	until := time.Unix(1700000000, 0)

	tests := []struct {
		name     string
		call     func(*tgbot.Bot) (*tg.APIResponse, error)
		endpoint string
		wantJSON string
	}{
		{
			name:     "SendPhoto",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendPhoto(ctx, 1, "photo-id", "nice") },
			endpoint: "sendPhoto",
			wantJSON: `{"chat_id":1,"photo":"photo-id","caption":"nice"}`,
		},
		{
			name:     "SendPhoto without caption",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendPhoto(ctx, 1, "photo-id", "") },
			endpoint: "sendPhoto",
			wantJSON: `{"chat_id":1,"photo":"photo-id"}`,
		},
		{
			name:     "SendVideo",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendVideo(ctx, 1, "video-id", "clip") },
			endpoint: "sendVideo",
			wantJSON: `{"chat_id":1,"video":"video-id","caption":"clip"}`,
		},
		{
			name:     "SendAudio routes to sendMessage",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendAudio(ctx, 1, "audio-id") },
			endpoint: "sendMessage",
			wantJSON: `{"chat_id":1,"audio":"audio-id"}`,
		},
		{
			name:     "SendDocument",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendDocument(ctx, 1, "doc-id") },
			endpoint: "sendDocument",
			wantJSON: `{"chat_id":1,"document":"doc-id"}`,
		},
		{
			name: "SendMediaGroup",
			call: func(b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.SendMediaGroup(ctx, 1, []tg.InputMediaPhoto{
					tg.NewInputMediaPhoto("p1", "first"),
					tg.NewInputMediaPhoto("p2", ""),
				})
			},
			endpoint: "sendMediaGroup",
			wantJSON: `{"chat_id":1,"media":[{"type":"photo","media":"p1","caption":"first"},{"type":"photo","media":"p2"}],
				"parse_mode":"html","disable_web_page_preview":false}`,
		},
		{
			name:     "DeleteMessage",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.DeleteMessage(ctx, 1, 10) },
			endpoint: "deleteMessage",
			wantJSON: `{"chat_id":1,"message_id":10}`,
		},
		{
			name:     "EditMessage",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.EditMessage(ctx, 1, 10, "edited") },
			endpoint: "editMessageText",
			wantJSON: `{"chat_id":1,"message_id":10,"text":"edited","parse_mode":"html"}`,
		},
		{
			name: "EditMessage with keyboard",
			call: func(b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.EditMessage(ctx, 1, 10, "edited",
					tgbot.WithEditParseMode(tg.ParseModeMarkdown),
					tgbot.WithEditKeyboard(tg.MakeInlineKeyboardMarkup(tg.ButtonSpec{Text: "OK", Payload: "ok"})),
				)
			},
			endpoint: "editMessageText",
			wantJSON: `{"chat_id":1,"message_id":10,"text":"edited","parse_mode":"Markdown",
				"reply_markup":{"inline_keyboard":[[{"text":"OK","callback_data":"ok"}]]}}`,
		},
		{
			name:     "ForwardMessage",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.ForwardMessage(ctx, 1, "@source", 10) },
			endpoint: "forwardMessage",
			wantJSON: `{"chat_id":1,"from_chat_id":"@source","message_id":10,"disable_notification":false}`,
		},
		{
			name:     "ForwardMessage silent",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.ForwardMessage(ctx, 1, 2, 10, tgbot.Silent()) },
			endpoint: "forwardMessage",
			wantJSON: `{"chat_id":1,"from_chat_id":2,"message_id":10,"disable_notification":true}`,
		},
		{
			name:     "GetAdminList",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.GetAdminList(ctx, -100123) },
			endpoint: "getChatAdministrators",
			wantJSON: `{"chat_id":-100123}`,
		},
		{
			name:     "GetFileMeta",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.GetFileMeta(ctx, "file-id") },
			endpoint: "getFile",
			wantJSON: `{"file_id":"file-id"}`,
		},
		{
			name:     "GetMe",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.GetMe(ctx) },
			endpoint: "getMe",
			wantJSON: `{}`,
		},
		{
			name:     "SendChatAction",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendChatAction(ctx, 1, tg.ActionTyping) },
			endpoint: "sendChatAction",
			wantJSON: `{"chat_id":1,"action":"typing"}`,
		},
		{
			name:     "KickChatMember",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.KickChatMember(ctx, 1, 55) },
			endpoint: "kickChatMember",
			wantJSON: `{"chat_id":1,"user_id":55}`,
		},
		{
			name: "KickChatMember until date",
			call: func(b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.KickChatMember(ctx, 1, 55, tgbot.WithUntilDate(until))
			},
			endpoint: "kickChatMember",
			wantJSON: `{"chat_id":1,"user_id":55,"until_date":1700000000}`,
		},
		{
			name:     "UnbanChatMember",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.UnbanChatMember(ctx, 1, 55) },
			endpoint: "unbanChatMember",
			wantJSON: `{"chat_id":1,"user_id":55}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewMockServer(t)
			bot := testutil.NewTestBot(t, server.BaseURL())

			resp, err := tt.call(bot)
			require.NoError(t, err)
			assert.True(t, resp.OK)

			cap := server.LastCapture()
			require.NotNil(t, cap)
			cap.AssertMethod(t, http.MethodPost)
			cap.AssertPath(t, testutil.MethodPath(tt.endpoint))
			assert.JSONEq(t, tt.wantJSON, string(cap.Body))
		})
	}
}

func TestSetWebhook_UsesGETWithQuery(t *testing.T) {
	server := testutil.NewMockServer(t)
	bot := testutil.NewTestBot(t, server.BaseURL())

	hook := "https://example.com/hook?secret=a&b=c"
	resp, err := bot.SetWebhook(context.Background(), hook)
	require.NoError(t, err)
	assert.True(t, resp.OK)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertMethod(t, http.MethodGet)
	cap.AssertPath(t, testutil.MethodPath("setWebhook"))
	cap.AssertQuery(t, "url", hook)
	assert.Empty(t, cap.Body)
}

func TestGetWebhookInfo(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.OnMethod(http.MethodGet, testutil.MethodPath("getWebhookInfo"), func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyWebhookInfo(w, "https://example.com/hook", 3)
	})
	bot := testutil.NewTestBot(t, server.BaseURL())

	resp, err := bot.GetWebhookInfo(context.Background())
	require.NoError(t, err)

	var info tg.WebhookInfo
	require.NoError(t, resp.Decode(&info))
	assert.Equal(t, "https://example.com/hook", info.URL)
	assert.Equal(t, 3, info.PendingUpdateCount)

	cap := server.LastCapture()
	cap.AssertMethod(t, http.MethodGet)
	cap.AssertPath(t, testutil.MethodPath("getWebhookInfo"))
	assert.Empty(t, cap.RawQuery)
}

func TestGetFileURL_NoNetwork(t *testing.T) {
	ft := testutil.NewFakeTransport("https://api.telegram.org")
	bot, err := tgbot.New(testutil.TestAPIKey, "", tgbot.WithTransport(ft))
	require.NoError(t, err)

	got := bot.GetFileURL("photos/file_1.jpg")

	assert.Equal(t, "https://api.telegram.org/file/"+testutil.TestAPIKey+"/photos/file_1.jpg", got)
	assert.Equal(t, 0, ft.CallCount())
}

func TestGetFileURL_DefaultBase(t *testing.T) {
	pool := testutil.NewFakePool(testutil.RespondOK(true))
	bot, err := tgbot.New(testutil.TestAPIKey, "", tgbot.WithPool(pool))
	require.NoError(t, err)

	assert.Equal(t, "https://api.telegram.org/file/"+testutil.TestAPIKey+"/doc.pdf", bot.GetFileURL("doc.pdf"))
	assert.Equal(t, 0, pool.CallCount())
}

func TestGetMe_DecodeUser(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.On(testutil.MethodPath("getMe"), func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUser(w)
	})
	bot := testutil.NewTestBot(t, server.BaseURL())

	resp, err := bot.GetMe(context.Background())
	require.NoError(t, err)

	var me tg.User
	require.NoError(t, resp.Decode(&me))
	assert.True(t, me.IsBot)
	assert.Equal(t, testutil.TestBotUsername, me.Username)
}

func TestDefaultMessageOptions(t *testing.T) {
	o := tgbot.DefaultMessageOptions()
	assert.Equal(t, tg.ParseModeHTML, o.ParseMode)
	assert.False(t, o.DisableWebPagePreview)
	assert.False(t, o.DisableNotification)
	assert.Nil(t, o.ReplyToMessageID)
}

func TestMethods_APIErrorSentinels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		endpoint string
		code     int
		desc     string
		call     func(*tgbot.Bot) (*tg.APIResponse, error)
		want     error
	}{
		{
			name:     "EditMessage same text",
			endpoint: "editMessageText",
			code:     400,
			desc:     "Bad Request: message is not modified: specified new message content and reply markup are exactly the same",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.EditMessage(ctx, 1, 10, "same") },
			want:     tg.ErrMessageNotModified,
		},
		{
			name:     "DeleteMessage too old",
			endpoint: "deleteMessage",
			code:     400,
			desc:     "Bad Request: message can't be deleted",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.DeleteMessage(ctx, 1, 10) },
			want:     tg.ErrMessageCantBeDeleted,
		},
		{
			name:     "KickChatMember without admin rights",
			endpoint: "kickChatMember",
			code:     400,
			desc:     "Bad Request: not enough rights to restrict/unrestrict chat member",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.KickChatMember(ctx, -100123, 55) },
			want:     tg.ErrNoRights,
		},
		{
			name:     "SendMessage to blocking user",
			endpoint: "sendMessage",
			code:     403,
			desc:     "Forbidden: bot was blocked by the user",
			call:     func(b *tgbot.Bot) (*tg.APIResponse, error) { return b.SendMessage(ctx, 1, "hi") },
			want:     tg.ErrBotBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewMockServer(t)
			server.On(testutil.MethodPath(tt.endpoint), func(w http.ResponseWriter, r *http.Request) {
				testutil.ReplyError(w, tt.code, tt.desc, nil)
			})
			bot := testutil.NewTestBot(t, server.BaseURL())

			resp, err := tt.call(bot)
			require.NoError(t, err)
			require.False(t, resp.OK)

			apiErr := resp.Err()
			assert.ErrorIs(t, apiErr, tt.want)

			var typed *tg.APIError
			require.ErrorAs(t, apiErr, &typed)
			assert.Equal(t, tt.endpoint, typed.Method)
			assert.Equal(t, tt.code, typed.Code)
		})
	}
}

func TestSetWebhook_EscapesAlreadyEscapedURL(t *testing.T) {
	server := testutil.NewMockServer(t)
	bot := testutil.NewTestBot(t, server.BaseURL())

	_, err := bot.SetWebhook(context.Background(), "https%3A%2F%2Fexample.com%2Fhook")
	require.NoError(t, err)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	assert.Equal(t, "url=https%253A%252F%252Fexample.com%252Fhook", cap.RawQuery)
	cap.AssertQuery(t, "url", "https%3A%2F%2Fexample.com%2Fhook")
}
