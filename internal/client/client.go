// Package client is a typed client for the booking API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/handler/httperr"
	"booking-api/internal/pkg/errs"
)

const defaultTimeout = 15 * time.Second

var ErrNoSession = errs.New("admin session required, log in first")

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("booking api: status %d", e.Status)
	}
	return fmt.Sprintf("booking api: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Session is the admin credential, passed explicitly to every protected call.
type Session struct {
	Token string
}

func (s Session) Valid() bool {
	return s.Token != ""
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Health(ctx context.Context) (*resdto.HealthResponse, error) {
	var out resdto.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Services(ctx context.Context) ([]*resdto.ServiceResponse, error) {
	var out resdto.ServiceListResponse
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

func (c *Client) CreateBooking(ctx context.Context, req reqdto.BookingRequest) (string, error) {
	var out resdto.BookingIDResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", nil, req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) PublicLookup(ctx context.Context, lastName, last4 string) ([]*resdto.PublicBookingResponse, error) {
	path := "/api/bookings/public?" + url.Values{
		"lastName": {lastName},
		"last4":    {last4},
	}.Encode()

	var out resdto.PublicBookingListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) Login(ctx context.Context, password string) (Session, error) {
	var out resdto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", nil, reqdto.LoginRequest{Password: password}, &out); err != nil {
		return Session{}, err
	}
	return Session{Token: out.Token}, nil
}

// Logout only clears the server cookie; the caller drops its Session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil, nil)
}

func (c *Client) ListBookings(ctx context.Context, s Session) ([]*resdto.BookingResponse, error) {
	if !s.Valid() {
		return nil, ErrNoSession
	}
	var out resdto.BookingListResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookings", &s, nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) UpdateBooking(ctx context.Context, s Session, id string, req reqdto.BookingRequest) error {
	if !s.Valid() {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodPut, "/api/bookings/"+url.PathEscape(id), &s, req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, s *Session, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, method+" "+path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode response")
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var envelope httperr.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
