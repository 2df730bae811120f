// Package motivation provides a client for the motivational quote microservice
package motivation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "reclaim/internal/platform/errors"
	"reclaim/internal/platform/logger"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUA        = "reclaim-coach"
	defaultMaxRetry  = 2
	defaultRetryBase = 250 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient responses
	MaxRetries int
	RetryBase  time.Duration
}

// Request carries the caller's progress so the message can be personal
type Request struct {
	Streak int    `json:"streak"`
	Name   string `json:"name,omitempty"`
	Goal   string `json:"goal,omitempty"`
}

// Client is a small JSON-over-HTTP client with bounded retries
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("motivation"),
		sleep: time.Sleep,
	}
}

// Fetch asks the quote service for a message tailored to the request
func (c *Client) Fetch(ctx context.Context, in Request) (string, error) {
	if c.opts.BaseURL == "" {
		return "", perr.Newf(perr.ErrorCodeUnavailable, "motivation service not configured")
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "motivation marshal failed")
	}

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/motivation", bytes.NewReader(payload))
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "motivation new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if attempts >= c.opts.MaxRetries {
				return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "motivation do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("motivation transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		switch resp.StatusCode {
		case http.StatusOK:
			var body struct {
				Message string `json:"message"`
			}
			err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
			_ = resp.Body.Close()
			if err != nil {
				return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "motivation decode failed")
			}
			if body.Message == "" {
				return "", perr.Newf(perr.ErrorCodeUnknown, "motivation empty message")
			}
			return body.Message, nil
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusTooManyRequests:
			_ = resp.Body.Close()
			if attempts >= c.opts.MaxRetries {
				return "", perr.Newf(perr.ErrorCodeUnavailable, "motivation transient error status %d", resp.StatusCode)
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("status", resp.StatusCode).Msg("motivation transient error retrying")
			c.sleep(back)
			attempts++
			continue
		default:
			tail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			_ = resp.Body.Close()
			return "", perr.Newf(perr.ErrorCodeUnknown, "motivation unexpected status %d body %s", resp.StatusCode, string(tail))
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	ms := int64(c.opts.RetryBase / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(5 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}
