package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultNgrokAPI   = "http://ngrok:4040"
	ngrokAttempts     = 10
	ngrokRetryBackoff = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL polls the ngrok local API until a tunnel shows up and
// returns its public URL, preferring HTTPS.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokRetryBackoff):
		}
	}
	return "", fmt.Errorf("ngrok: gave up after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	if len(tunnels.Tunnels) == 0 {
		return "", errNoTunnels
	}
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	return tunnels.Tunnels[0].PublicURL, nil
}
