package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"duo_webapp/internal/models"
)

var (
	ErrInvalidBaseURL   = errors.New("invalid base url")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) (*Client, error) {
	const op = "backend.http.New"

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrInvalidBaseURL, baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// ListGames fetches the whole catalog. The payload is returned as decoded,
// without any validation of its entries.
func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	const op = "backend.http.ListGames"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var games []models.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("games loaded", slog.String("operation", op), slog.Int("count", len(games)))

	return games, nil
}

// CreateAd posts an ad for gameID. Any 2xx response is a success.
func (c *Client) CreateAd(ctx context.Context, gameID string, ad models.CreateAdRequest) error {
	const op = "backend.http.CreateAd"

	body, err := json.Marshal(ad)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	endpoint := c.baseURL + "/games/" + url.PathEscape(gameID) + "/ads"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("ad created", slog.String("operation", op), slog.String("game_id", gameID))

	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
}
