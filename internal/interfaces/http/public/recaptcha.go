package public

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// recaptchaResponse mirrors the verification provider's siteverify reply.
type recaptchaResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// RecaptchaVerifier calls the bot-verification provider with the
// server-side secret and the token the client obtained.
type RecaptchaVerifier struct {
	client   *http.Client
	endpoint string
	secret   string
}

// NewRecaptchaVerifier binds the provider endpoint and secret to an HTTP
// client. The client's timeout bounds the whole verification call.
func NewRecaptchaVerifier(client *http.Client, endpoint, secret string) *RecaptchaVerifier {
	return &RecaptchaVerifier{client: client, endpoint: endpoint, secret: secret}
}

// Verify performs the synchronous provider call. The bool is the provider's
// verdict; any transport, status or decode problem comes back as an error
// and callers treat it as a failed check.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("siteverify request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return false, fmt.Errorf("siteverify status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed recaptchaResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<16)).Decode(&parsed); err != nil {
		return false, fmt.Errorf("decode siteverify response: %w", err)
	}
	return parsed.Success, nil
}
