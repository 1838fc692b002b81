package holidayapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client fetches holiday data from a Calendarific-compatible API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// FetchHolidays issues a single GET for (countryCode, year) and returns the
// raw response body. No retries; any transport error or non-2xx status is
// returned to the caller.
func (c *Client) FetchHolidays(ctx context.Context, countryCode string, year int) ([]byte, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("country", countryCode)
	query.Set("year", strconv.Itoa(year))

	requestURL := c.baseURL + "/holidays?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return body, nil
}
