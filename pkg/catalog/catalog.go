package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campusly/course-services/walletgateway/pkg/httpclient"
)

const courseEndpoint = "/api/v1/courses/"

// Client reads cashback configuration from the course catalog. The catalog
// is read-only from the wallet's point of view; nothing here mutates it.
type Client interface {
	GetCashbackConfig(ctx context.Context, courseID string) (CashbackConfig, error)
}

type client struct {
	http   httpclient.HTTPClient
	config Config
}

func NewClient(cfg Config, http httpclient.HTTPClient) Client {
	return &client{config: cfg, http: http}
}

func (c *client) GetCashbackConfig(ctx context.Context, courseID string) (CashbackConfig, error) {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if c.config.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.config.APIKey
	}

	resp, err := c.http.Get(ctx, c.config.BaseURL+courseEndpoint+courseID, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return CashbackConfig{}, ErrTimeout
		}

		return CashbackConfig{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode == StatusOK {
		var response courseResponse
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			return CashbackConfig{}, fmt.Errorf("decoding error: %w", err)
		}

		return response.Result.Cashback, nil
	}

	return CashbackConfig{}, MapStatusToError(resp.StatusCode)
}
