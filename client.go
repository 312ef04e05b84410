package goecharger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 3 * time.Second

// Client talks to a single go-e Charger device over its local HTTP API v2.
// It is safe for concurrent use.
type Client struct {
	host       string
	httpClient *http.Client
	logger     *slog.Logger

	// Device variant cache for ampere validation, fetched on first use.
	modelMu sync.Mutex
	model   string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 3 second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request/response debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the device at host (hostname or IP).
func NewClient(host string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, errors.New("host needs to be set")
	}

	c := &Client{
		host:   host,
		logger: slog.Default(),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// statusURL builds the status request URL, optionally filtered to keys.
func (c *Client) statusURL(keys []string) string {
	u := "http://" + c.host + "/api/status"
	if len(keys) > 0 {
		u += "?filter=" + strings.Join(keys, ",")
	}
	return u
}

// setURL builds the set request URL. The value is compact JSON encoded.
func (c *Client) setURL(key string, value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode value for %q: %w", key, err)
	}
	return "http://" + c.host + "/api/set?" + key + "=" + url.QueryEscape(string(encoded)), nil
}

// doRequest performs a GET against the device and decodes the JSON object
// response. The set endpoint answers 500 for some accepted keys, which
// tolerate500 allows through to response verification.
func (c *Client) doRequest(ctx context.Context, reqURL string, tolerate500 bool) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Device request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("communicate with device: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAPINotEnabled
	}

	if resp.StatusCode != http.StatusOK &&
		!(tolerate500 && resp.StatusCode == http.StatusInternalServerError) {
		c.logger.Warn("Non-200 status", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(data))
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("parse device JSON: %w", err)
	}

	c.logger.Debug("Device response", "url", reqURL, "fields", len(decoded))

	return decoded, nil
}

// GetStatus retrieves and translates the device status. With no keys the
// full status is requested; StatusMinimum and StatusDefault are predefined
// selections.
func (c *Client) GetStatus(ctx context.Context, keys ...string) (*Status, error) {
	raw, err := c.doRequest(ctx, c.statusURL(keys), false)
	if err != nil {
		return nil, err
	}
	return TranslateStatus(raw)
}

// GetAmpere returns the allowed charging current for the car in ampere.
func (c *Client) GetAmpere(ctx context.Context) (*Status, error) {
	return c.GetStatus(ctx, KeyAmpereAllowed)
}

// GetChargingMode returns the currently active charging mode.
func (c *Client) GetChargingMode(ctx context.Context) (*Status, error) {
	return c.GetStatus(ctx, KeyChargingMode)
}

// GetPhaseMode returns the phase mode (auto / one / three).
func (c *Client) GetPhaseMode(ctx context.Context) (*Status, error) {
	return c.GetStatus(ctx, KeyPhaseMode)
}

// GetAbsoluteMaxCurrent returns the absolute maximum current setting for
// the device in ampere.
func (c *Client) GetAbsoluteMaxCurrent(ctx context.Context) (*Status, error) {
	return c.GetStatus(ctx, KeyAmpereDeviceMaximum)
}

// GetCableLockMode returns the cable lock mode.
func (c *Client) GetCableLockMode(ctx context.Context) (*Status, error) {
	return c.GetStatus(ctx, KeyCableLockMode)
}

// GetChargeLimit returns the charge limit in Wh, or nil when disabled.
func (c *Client) GetChargeLimit(ctx context.Context) (*Status, error) {
	return c.GetStatus(ctx, KeyChargeLimit)
}

// SetKey sets a single raw device key. For documented keys prefer the
// typed setters.
func (c *Client) SetKey(ctx context.Context, key string, value any) error {
	return c.setKey(ctx, key, key, value)
}

// setKey issues the set request and verifies the device echoed the key
// with value true. label names the setting in errors; each shortcut
// setter passes its own.
func (c *Client) setKey(ctx context.Context, key, label string, value any) error {
	reqURL, err := c.setURL(key, value)
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, reqURL, true)
	if err != nil {
		return err
	}

	if ok, _ := resp[key].(bool); !ok {
		return fmt.Errorf("setting %q, got response %v: %w", label, resp, ErrSetRejected)
	}

	c.logger.Debug("Key set", "key", key, "value", value)

	return nil
}

// deviceModel returns the charger's power class, fetching it once.
func (c *Client) deviceModel(ctx context.Context) (string, error) {
	c.modelMu.Lock()
	defer c.modelMu.Unlock()

	if c.model != "" {
		return c.model, nil
	}

	status, err := c.GetStatus(ctx, KeyDeviceModel)
	if err != nil {
		return "", err
	}

	value, _ := status.Get(fieldNames[KeyDeviceModel])
	model, ok := value.(string)
	if !ok {
		return "", errors.New("device model missing from status response")
	}

	c.model = model
	return model, nil
}

// validateAmpere rejects currents above 16 A on 11 kW variants.
func (c *Client) validateAmpere(ctx context.Context, value int) error {
	model, err := c.deviceModel(ctx)
	if err != nil {
		return err
	}
	if strings.Contains(model, "11") && value > 16 {
		return fmt.Errorf("ampere value %d too big for device model %q", value, model)
	}
	return nil
}

// SetAmpere sets the allowed charging current for the car in ampere
// (6 up to the device maximum).
func (c *Client) SetAmpere(ctx context.Context, value int) error {
	if err := c.validateAmpere(ctx, value); err != nil {
		return err
	}
	return c.setKey(ctx, KeyAmpereAllowed, "ampere", value)
}

// SetAbsoluteMaxCurrent sets the absolute maximum current for the device
// in ampere.
func (c *Client) SetAbsoluteMaxCurrent(ctx context.Context, value int) error {
	if err := c.validateAmpere(ctx, value); err != nil {
		return err
	}
	return c.setKey(ctx, KeyAmpereDeviceMaximum, "absolute_max_current", value)
}

// SetChargingMode forces a charging session on, off or back to neutral.
func (c *Client) SetChargingMode(ctx context.Context, mode ChargingMode) error {
	return c.setKey(ctx, KeyChargingMode, "charging_mode", int(mode))
}

// SetPhaseMode sets the phase mode to auto, one or three phases.
func (c *Client) SetPhaseMode(ctx context.Context, mode PhaseMode) error {
	return c.setKey(ctx, KeyPhaseMode, "phase_mode", int(mode))
}

// SetCableLockMode sets the cable lock mode.
func (c *Client) SetCableLockMode(ctx context.Context, mode CableLockMode) error {
	return c.setKey(ctx, KeyCableLockMode, "cable_lock_mode", int(mode))
}

// SetChargeLimit sets the charge limit in Wh. nil disables the limit.
func (c *Client) SetChargeLimit(ctx context.Context, wh *float64) error {
	if wh == nil {
		return c.setKey(ctx, KeyChargeLimit, "charge_limit", nil)
	}
	return c.setKey(ctx, KeyChargeLimit, "charge_limit", *wh)
}
