// Package notifier implements the best-effort Telegram side channel.
// Delivery failures are reported to the caller as ordinary errors, and
// every caller in this service deliberately discards them: a booking or
// contact submission must never fail because the notification did.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://api.telegram.org"

// Telegram sends plain-text messages to a fixed chat via the Bot API.
// Credentials are passed in explicitly at construction; an instance
// built from empty values is valid and silently skips every send.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// NewTelegram constructs a Telegram notifier.  Either credential being
// empty leaves the notifier in the disabled state.
func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
}

// WithBaseURL overrides the API endpoint.  Used by tests.
func (t *Telegram) WithBaseURL(u string) *Telegram {
	t.baseURL = u
	return t
}

// Configured reports whether both credentials are present.
func (t *Telegram) Configured() bool {
	return t.token != "" && t.chatID != ""
}

// sendMessagePayload is the Bot API sendMessage request body.
type sendMessagePayload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send delivers one message to the configured chat.  An unconfigured
// notifier returns nil without making a request.  Network failures and
// non-2xx API responses are returned as errors for the caller to
// discard.
func (t *Telegram) Send(ctx context.Context, text string) error {
	if !t.Configured() {
		return nil
	}
	body, err := json.Marshal(sendMessagePayload{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("telegram: sendMessage returned status %d", resp.StatusCode)
	}
	return nil
}
