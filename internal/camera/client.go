package camera

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds the camera service endpoint and account credentials.
type Config struct {
	// BaseURL is the root URL of the camera service API.
	BaseURL string
	// Username is the service account name.
	Username string
	// Password is the service account password.
	Password string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Client talks to the camera service over its HTTP API. Login must be
// called before any other request so the session token is attached to
// subsequent calls.
type Client struct {
	http *resty.Client
	cfg  Config
}

// BaseStation is a camera hub together with its current operating mode.
type BaseStation struct {
	// DeviceID uniquely identifies the station.
	DeviceID string
	// DeviceName is the operator-facing station name.
	DeviceName string
	// Mode is the station's current operating mode label.
	Mode string
}

// deviceTypeBaseStation marks the hub devices that carry an operating mode.
const deviceTypeBaseStation = "basestation"

var (
	// errNoSessionToken is returned when login succeeds but yields no token.
	errNoSessionToken = errors.New("login succeeded but no session token returned")
)

// loginRequest matches the JSON body of POST /login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse captures the session token returned by the service.
type loginResponse struct {
	Result struct {
		Token string `json:"token"`
	} `json:"result"`
}

// device mirrors one element of the device listing.
type device struct {
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
	DeviceType string `json:"deviceType"`
	Properties struct {
		ActiveMode string `json:"activeMode"`
	} `json:"properties"`
}

// devicesResponse captures the device listing payload.
type devicesResponse struct {
	Result []device `json:"result"`
}

// New creates a client for the camera service at cfg.BaseURL.
func New(cfg Config) *Client {
	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http: r,
		cfg:  cfg,
	}
}

// Login authenticates with the camera service and injects the returned
// session token into all subsequent requests on this client.
func (c *Client) Login(ctx context.Context) error {
	payload := loginRequest{
		Username: c.cfg.Username,
		Password: c.cfg.Password,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&loginResponse{}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("login failed: %s", resp.Status())
	}

	result, ok := resp.Result().(*loginResponse)
	if !ok || result.Result.Token == "" {
		return errNoSessionToken
	}

	c.http.SetAuthToken(result.Result.Token)

	return nil
}

// BaseStations lists the camera hubs and their current operating modes.
// All stations are assumed to follow the same schedule; the caller checks
// each one.
func (c *Client) BaseStations(ctx context.Context) ([]BaseStation, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&devicesResponse{}).
		Get("/devices")
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("list devices failed: %s", resp.Status())
	}

	result, ok := resp.Result().(*devicesResponse)
	if !ok {
		return nil, errors.New("unexpected device listing payload")
	}

	stations := make([]BaseStation, 0, len(result.Result))

	for _, d := range result.Result {
		if d.DeviceType != deviceTypeBaseStation {
			continue
		}

		stations = append(stations, BaseStation{
			DeviceID:   d.DeviceID,
			DeviceName: d.DeviceName,
			Mode:       d.Properties.ActiveMode,
		})
	}

	return stations, nil
}
