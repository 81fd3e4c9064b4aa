package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	registerPath = "/addapi"
	respondPath  = "/respond"
)

// RelayClient talks to a WebSpark relay. Both calls block until the relay
// answers; the only timeout is the one set on HTTPClient.
type RelayClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewRelayClient(baseURL string, client *http.Client) *RelayClient {
	if client == nil {
		client = &http.Client{}
	}
	return &RelayClient{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: client}
}

func (c *RelayClient) endpoint(path, name string) string {
	return c.BaseURL + path + "?" + url.Values{"name": {name}}.Encode()
}

// Poll registers serviceName and waits for the next client request blob.
func (c *RelayClient) Poll(ctx context.Context, serviceName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(registerPath, serviceName), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &RelayError{Endpoint: "addapi", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read relay request: %w", err)
	}
	return string(body), nil
}

// Respond posts the page for the client the relay named clientName.
func (c *RelayClient) Respond(ctx context.Context, clientName, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(respondPath, clientName), strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return &RelayError{Endpoint: "respond", Status: resp.StatusCode}
	}
	return nil
}
