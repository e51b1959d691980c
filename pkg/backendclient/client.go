package backendclient

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/QuangTung97/booth-ads/config"
	"github.com/QuangTung97/booth-ads/model"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client reads venue ads from the booth ads http api
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// StatusError when the api responds with a non 2xx status
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("backendclient: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backendclient: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// New ...
func New(conf config.BackendConfig) *Client {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

type venueAdsResponse struct {
	Ads []model.Advertisement `json:"ads"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListVenueAds returns every ad record of a venue
func (c *Client) ListVenueAds(ctx context.Context, venueID string) ([]model.Advertisement, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/api/v1/venues/" + url.PathEscape(venueID) + "/ads"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode/100 != 2 {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
		}
	}

	var result venueAdsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("backendclient: decode venue ads: %w", err)
	}
	return result.Ads, nil
}
