package sms

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/medroadmap/penalty-board-api/pkg/config"
)

// Result describes the provider outcome for a single recipient.
type Result struct {
	To         string `json:"to"`
	MessageID  string `json:"message_id,omitempty"`
	StatusCode string `json:"status_code,omitempty"`
}

// Sender delivers one text message to one normalized destination number.
type Sender interface {
	Send(ctx context.Context, to, from, text string) (Result, error)
}

// NormalizePhone strips every non-digit character and enforces the domestic
// leading zero. It returns "" when no digits remain.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, "0") {
		return "0" + digits
	}
	return digits
}

// Client talks to a CoolSMS-compatible message API using HMAC-SHA256 request
// signing.
type Client struct {
	apiKey    string
	apiSecret string
	baseURL   string
	http      *http.Client
}

// NewClient builds a provider client from credentials.
func NewClient(cfg config.SMSConfig) *Client {
	return &Client{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	Message struct {
		To   string `json:"to"`
		From string `json:"from"`
		Text string `json:"text"`
	} `json:"message"`
}

type sendResponse struct {
	MessageID     string `json:"messageId"`
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// Send delivers a single message and returns the provider acknowledgement.
func (c *Client) Send(ctx context.Context, to, from, text string) (Result, error) {
	var payload sendRequest
	payload.Message.To = to
	payload.Message.From = from
	payload.Message.Text = text

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("encode sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages/v4/send", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authorization(time.Now().UTC()))

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, fmt.Errorf("read sms response: %w", err)
	}

	var decoded sendResponse
	if err := json.Unmarshal(raw, &decoded); err != nil && len(raw) > 0 {
		decoded.StatusMessage = string(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := decoded.StatusMessage
		if msg == "" {
			msg = resp.Status
		}
		return Result{}, fmt.Errorf("provider rejected message to %s: %s", to, msg)
	}

	return Result{To: to, MessageID: decoded.MessageID, StatusCode: decoded.StatusCode}, nil
}

// authorization builds the provider's HMAC-SHA256 header: the secret signs
// the concatenated date and salt.
func (c *Client) authorization(now time.Time) string {
	date := now.Format(time.RFC3339)
	salt := randomHex(16)

	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s", c.apiKey, date, salt, signature)
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
