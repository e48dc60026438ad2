// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package ransomlive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bonial-oss/ransomstats/internal/input"
	"github.com/bonial-oss/ransomstats/internal/types"
)

const (
	// DefaultBaseURL is the ransomware.live v2 API root.
	DefaultBaseURL  = "https://api.ransomware.live/v2"
	maxResponseSize = 100 * 1024 * 1024 // 100 MB
)

// Source fetches victim disclosures from the ransomware.live API.
type Source struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.client = c }
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(s *Source) { s.userAgent = ua }
}

// NewSource creates a Source rooted at baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewSource(baseURL string, opts ...Option) *Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeGroup trims and lower-cases a group name.
func NormalizeGroup(group string) string {
	return strings.ToLower(strings.TrimSpace(group))
}

// GroupVictimsURL returns the groupvictims endpoint for group.
func (s *Source) GroupVictimsURL(group string) string {
	return s.baseURL + "/groupvictims/" + url.PathEscape(NormalizeGroup(group))
}

// Fetch performs a single GET of the group's victims. Any status other
// than 200 is an error.
func (s *Source) Fetch(ctx context.Context, group string) ([]types.Victim, error) {
	endpoint := s.GroupVictimsURL(group)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	victims, err := input.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return victims, nil
}

// StatusError reports a non-200 response from the API.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}
