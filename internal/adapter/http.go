package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-field-crypt/internal/config"
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/utils"
	"github.com/MKhiriev/go-field-crypt/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter] for
// cfg.ServerURL. A URL without a scheme is treated as http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// CreateMessage implements [ServerAdapter] with POST /api/messages.
func (h *httpServerAdapter) CreateMessage(ctx context.Context, text string) (models.Message, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateMessageRequest{Text: text}).
		Post("/api/messages")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.CreateMessage").Msg("request failed")
		return models.Message{}, fmt.Errorf("create message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	var message models.Message
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.Message{}, fmt.Errorf("decode create message response: %w", err)
	}

	return message, nil
}

// GetMessage implements [ServerAdapter] with GET /api/messages/{id}.
func (h *httpServerAdapter) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/messages/{id}")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.GetMessage").Msg("request failed")
		return models.Message{}, fmt.Errorf("get message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	var message models.Message
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.Message{}, fmt.Errorf("decode message response: %w", err)
	}

	return message, nil
}

// ListMessages implements [ServerAdapter] with GET /api/messages or
// GET /api/messages/decrypted.
func (h *httpServerAdapter) ListMessages(ctx context.Context, decrypted bool) ([]models.Message, error) {
	path := "/api/messages"
	if decrypted {
		path += "/decrypted"
	}

	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.ListMessages").Msg("request failed")
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return messages, nil
}

// Version implements [ServerAdapter] with GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
