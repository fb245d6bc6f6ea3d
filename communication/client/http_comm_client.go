package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"tictactoe/communication"
	"tictactoe/game"
)

type predictRequest struct {
	Board string `json:"board"`
}

type predictResponse struct {
	Move *int `json:"move"`
}

// Classifier asks a classifier service for a move over HTTP.
type Classifier struct {
	url    string
	client *http.Client
}

// NewClassifier initializes and returns a new Classifier posting to url.
func NewClassifier(url string, client *http.Client) *Classifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &Classifier{
		url:    url,
		client: client,
	}
}

func (c *Classifier) Predict(ctx context.Context, board game.Board) (int, error) {
	data, err := json.Marshal(predictRequest{Board: communication.Encode(board)})
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var body predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: %v", communication.ErrMalformedResponse, err)
	}
	if body.Move == nil {
		return 0, fmt.Errorf("%w: missing move", communication.ErrMalformedResponse)
	}
	if err := communication.CheckIndex(*body.Move); err != nil {
		return 0, err
	}
	return *body.Move, nil
}

var _ communication.Classifier = (*Classifier)(nil)
