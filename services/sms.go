package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// SMSClient posts messages to the hosted SMS gateway, used for the
// registration OTP flow.
type SMSClient struct {
	baseURL string
	apiKey  string
	sender  string
	http    *http.Client
}

func NewSMSClient(baseURL, apiKey, sender string) *SMSClient {
	return &SMSClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		sender:  sender,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type smsRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// Send delivers one text message. When no API key is configured the
// message is logged instead, which keeps local development working
// without a gateway account.
func (c *SMSClient) Send(ctx context.Context, phone, message string) error {
	if c.apiKey == "" {
		log.Printf("sms (dev mode) to %s: %s", phone, message)
		return nil
	}

	body, err := json.Marshal(smsRequest{To: phone, From: c.sender, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
