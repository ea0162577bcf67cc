// Package browse is a terminal client for the user directory API.
package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/user-directory/internal/dto"
)

const (
	listPath       = "/api/users"
	defaultTimeout = 10 * time.Second
)

// Lister fetches a directory page for a raw query string such as "search=ann&page=2".
type Lister interface {
	List(ctx context.Context, rawQuery string) (*dto.UserListResponse, error)
}

type ClientOption func(*Client)

type Client struct {
	base url.URL
	http *http.Client
}

func NewClient(baseUrl string, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server address %q", baseUrl)
	}

	client := &Client{
		base: *base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

func (c *Client) List(ctx context.Context, rawQuery string) (*dto.UserListResponse, error) {
	reqURL := c.base.JoinPath(listPath)
	reqURL.RawQuery = rawQuery

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var page dto.UserListResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &page, nil
}

// LinkQuery returns the query string of a page link href.
func LinkQuery(link dto.PageLink) (string, bool) {
	if !link.Enabled {
		return "", false
	}
	u, err := url.Parse(link.Href)
	if err != nil {
		return "", false
	}
	return u.RawQuery, true
}
