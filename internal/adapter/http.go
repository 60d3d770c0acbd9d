package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-echo-feed/internal/config"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/utils"
	"github.com/MKhiriev/go-echo-feed/models"
	"github.com/go-resty/resty/v2"
)

// formDataField is the single form field carrying the JSON payload of every
// POST endpoint.
const formDataField = "data"

type httpRoundStateProvider struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPRoundStateProvider constructs an HTTP/JSON implementation of
// [RoundStateProvider]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRoundStateProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (RoundStateProvider, error) {
	return newHTTPRoundStateProvider(adapterCfg, logger)
}

// NewHTTPAdminProvider constructs an HTTP/JSON implementation of
// [AdminProvider] on top of the same transport as [NewHTTPRoundStateProvider].
func NewHTTPAdminProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (AdminProvider, error) {
	return newHTTPRoundStateProvider(adapterCfg, logger)
}

func newHTTPRoundStateProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (*httpRoundStateProvider, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().Configure(baseURL, adapterCfg.RequestTimeout)

	return &httpRoundStateProvider{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [RoundStateProvider].
func (h *httpRoundStateProvider) BaseURL() string {
	return h.baseURL
}

// NewAPIKey implements [RoundStateProvider]. It calls GET /new-apikey and
// returns the issued key. A null or blank key yields [ErrNoAPIKeyAvailable].
func (h *httpRoundStateProvider) NewAPIKey(ctx context.Context) (string, error) {
	var body models.APIKeyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/new-apikey")
	if err != nil {
		return "", fmt.Errorf("new api key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if err = decodeBody(resp, &body); err != nil {
		return "", fmt.Errorf("new api key: %w", err)
	}

	if body.APIKey == nil || strings.TrimSpace(*body.APIKey) == "" {
		return "", ErrNoAPIKeyAvailable
	}

	return strings.TrimSpace(*body.APIKey), nil
}

// GetState implements [RoundStateProvider]. It calls GET /state/{apiKey} and
// decodes the snapshot. The "error" field of the envelope is classified via
// mapProviderError, so an unknown key surfaces as [ErrKeyNotFound].
func (h *httpRoundStateProvider) GetState(ctx context.Context, apiKey string) (models.RoundSnapshot, error) {
	var snapshot models.RoundSnapshot

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("apiKey", apiKey).
		Get("/state/{apiKey}")
	if err != nil {
		return models.RoundSnapshot{}, fmt.Errorf("get state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RoundSnapshot{}, err
	}
	if err = decodeBody(resp, &snapshot); err != nil {
		return models.RoundSnapshot{}, fmt.Errorf("get state: %w", err)
	}
	if err = mapProviderError(snapshot.Error); err != nil {
		return models.RoundSnapshot{}, err
	}

	return snapshot, nil
}

// SendActions implements [RoundStateProvider]. The action set is JSON-encoded
// into the "data" form field of POST /send-actions/{apiKey}.
func (h *httpRoundStateProvider) SendActions(ctx context.Context, apiKey string, actions models.ActionSet) error {
	h.logger.Debug().
		Str("func", "httpRoundStateProvider.SendActions").
		Ints("message", actions.Message).
		Ints("follows", actions.Follows).
		Msg("sending actions")

	return h.postData(ctx, "/send-actions/{apiKey}", apiKey, actions)
}

// SendMessage implements [RoundStateProvider]. Only the belief-state message
// is sent, via POST /send-message/{apiKey}.
func (h *httpRoundStateProvider) SendMessage(ctx context.Context, apiKey string, message []int) error {
	h.logger.Debug().
		Str("func", "httpRoundStateProvider.SendMessage").
		Ints("message", message).
		Msg("sending message")

	return h.postData(ctx, "/send-message/{apiKey}", apiKey, models.ActionSet{Message: message})
}

// SimulationState implements [AdminProvider].
func (h *httpRoundStateProvider) SimulationState(ctx context.Context, adminKey string) (models.SimulationState, error) {
	var state models.SimulationState

	raw, err := h.getRaw(ctx, "/simulation-state/{apiKey}", adminKey)
	if err != nil {
		return models.SimulationState{}, err
	}
	if err = json.Unmarshal(raw, &state); err != nil {
		return models.SimulationState{}, fmt.Errorf("simulation state: %w: %v", ErrMalformedResponse, err)
	}

	return state, nil
}

// AdminView implements [AdminProvider].
func (h *httpRoundStateProvider) AdminView(ctx context.Context, adminKey string) (json.RawMessage, error) {
	return h.getRaw(ctx, "/admin-view/{apiKey}", adminKey)
}

// DefaultParameters implements [AdminProvider].
func (h *httpRoundStateProvider) DefaultParameters(ctx context.Context, adminKey string) (json.RawMessage, error) {
	return h.getRaw(ctx, "/get-default-parameters/{apiKey}", adminKey)
}

// PastSimulations implements [AdminProvider].
func (h *httpRoundStateProvider) PastSimulations(ctx context.Context, adminKey string) (json.RawMessage, error) {
	return h.getRaw(ctx, "/past-simulations/{apiKey}", adminKey)
}

// CreateSimulation implements [AdminProvider]. params must be a JSON object;
// it is forwarded verbatim in the "data" form field.
func (h *httpRoundStateProvider) CreateSimulation(ctx context.Context, adminKey string, params json.RawMessage) error {
	if !json.Valid(params) {
		return fmt.Errorf("%w: simulation parameters are not valid json", ErrBadRequest)
	}

	return h.postData(ctx, "/create-simulation/{apiKey}", adminKey, params)
}

// EndSimulation implements [AdminProvider].
func (h *httpRoundStateProvider) EndSimulation(ctx context.Context, adminKey string) error {
	_, err := h.getRaw(ctx, "/end-simulation/{apiKey}", adminKey)
	return err
}

// PauseSimulation implements [AdminProvider].
func (h *httpRoundStateProvider) PauseSimulation(ctx context.Context, adminKey string) error {
	return h.post(ctx, "/pause-simulation/{apiKey}", adminKey, nil)
}

// ResumeSimulation implements [AdminProvider].
func (h *httpRoundStateProvider) ResumeSimulation(ctx context.Context, adminKey string) error {
	return h.post(ctx, "/resume-simulation/{apiKey}", adminKey, nil)
}

func (h *httpRoundStateProvider) postData(ctx context.Context, path, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}

	return h.post(ctx, path, key, map[string]string{formDataField: string(data)})
}

func (h *httpRoundStateProvider) post(ctx context.Context, path, key string, form map[string]string) error {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("apiKey", key)
	if form != nil {
		req.SetFormData(form)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return checkEnvelope(resp)
}

// getRaw issues a keyed GET and returns the body once the error envelope
// has been checked.
func (h *httpRoundStateProvider) getRaw(ctx context.Context, path, key string) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("apiKey", key).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if err = checkEnvelope(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func decodeBody(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// checkEnvelope inspects the optional {"error": ...} field. Empty bodies and
// non-object bodies (arrays from /past-simulations) carry no error.
func checkEnvelope(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" || !strings.HasPrefix(body, "{") {
		return nil
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return mapProviderError(envelope.Error)
}
