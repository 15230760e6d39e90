// Package hebcal converts dates between the Hebrew and Gregorian calendars
// by calling a hebcal.com-compatible converter API.
package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/guykh/hebdate/pkg/dateparse"
)

// DefaultBaseURL is the public converter service.
const DefaultBaseURL = "https://www.hebcal.com"

// DefaultTimeout bounds a single conversion request.
const DefaultTimeout = 5 * time.Second

const userAgent = "hebdate"

// Options configures a Client.
type Options struct {
	BaseURL string        // converter service base URL (uses DefaultBaseURL if empty)
	Timeout time.Duration // request timeout (uses DefaultTimeout if zero)
}

// Client calls the converter service. One conversion is one GET request;
// there are no retries.
type Client struct {
	http *resty.Client
}

// NewClient creates a converter client. The zero Options value gives a
// client for the public service.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent),
	}
}

// converterResponse mirrors the service's JSON body. Fields are pointers so
// an absent field is distinguishable from a literal zero.
type converterResponse struct {
	GregorianYear  *int    `json:"gy"`
	GregorianMonth *int    `json:"gm"`
	GregorianDay   *int    `json:"gd"`
	HebrewYear     *int    `json:"hy"`
	HebrewMonth    *string `json:"hm"`
	HebrewDay      *int    `json:"hd"`
	Message        *string `json:"error"`
}

// ToGregorian converts a Hebrew date to its Gregorian equivalent.
func (c *Client) ToGregorian(ctx context.Context, d dateparse.HebrewDate) (dateparse.GregorianDate, error) {
	body, err := c.get(ctx, map[string]string{
		"cfg":    "json",
		"h2g":    "1",
		"strict": "1",
		"hy":     strconv.Itoa(d.Year),
		"hm":     d.Month,
		"hd":     strconv.Itoa(d.Day),
	})
	if err != nil {
		return dateparse.GregorianDate{}, err
	}
	if body.GregorianYear == nil || body.GregorianMonth == nil || body.GregorianDay == nil {
		return dateparse.GregorianDate{}, fmt.Errorf("%w: gy/gm/gd absent", ErrIncomplete)
	}
	return dateparse.GregorianDate{
		Year:  *body.GregorianYear,
		Month: *body.GregorianMonth,
		Day:   *body.GregorianDay,
	}, nil
}

// ToHebrew converts a Gregorian date to its Hebrew equivalent. The month in
// the returned date is the service's transliterated name, e.g. "Kislev".
func (c *Client) ToHebrew(ctx context.Context, d dateparse.GregorianDate) (dateparse.HebrewDate, error) {
	body, err := c.get(ctx, map[string]string{
		"cfg":    "json",
		"g2h":    "1",
		"strict": "1",
		"gy":     strconv.Itoa(d.Year),
		"gm":     strconv.Itoa(d.Month),
		"gd":     strconv.Itoa(d.Day),
	})
	if err != nil {
		return dateparse.HebrewDate{}, err
	}
	if body.HebrewYear == nil || body.HebrewMonth == nil || body.HebrewDay == nil {
		return dateparse.HebrewDate{}, fmt.Errorf("%w: hy/hm/hd absent", ErrIncomplete)
	}
	return dateparse.HebrewDate{
		Year:  *body.HebrewYear,
		Month: *body.HebrewMonth,
		Day:   *body.HebrewDay,
	}, nil
}

// get performs one converter request and decodes the body. The body is
// decoded even on error statuses because the service reports its reason in
// a JSON "error" field.
func (c *Client) get(ctx context.Context, params map[string]string) (*converterResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/converter")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var body converterResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)

	if resp.IsError() {
		if decodeErr == nil && body.Message != nil {
			return nil, fmt.Errorf("%w: %d: %s", ErrStatus, resp.StatusCode(), *body.Message)
		}
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, decodeErr)
	}
	return &body, nil
}
