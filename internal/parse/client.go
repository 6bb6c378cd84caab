// Package parse wraps the external language-model service that turns
// free-form shipment text into suggested invoice lines. The collaborator
// is best-effort by contract: any failure degrades to an empty result.
package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Item is one suggested line as returned by the collaborator. Field names
// follow its wire schema; missing numeric fields decode to zero.
type Item struct {
	FishNameSuggestion string  `json:"fishNameSuggestion"`
	Quantity           float64 `json:"quantity"`
	Symbol             string  `json:"symbol"`
	GrossWeight        float64 `json:"brutWeight"`
	NetWeight          float64 `json:"netWeight"`
	UnitPrice          float64 `json:"unitPrice"`
}

const promptTemplate = `Tu es un expert en logistique de pêche. Analyse le texte pour extraire, pour chaque espèce: fishNameSuggestion, quantity, symbol (C ou P), brutWeight (KG), netWeight (KG), unitPrice (EUR). Réponds uniquement avec un tableau JSON.

Texte d'entrée: %q`

// Client calls a Gemini-style generateContent endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Parse sends the free text and decodes the suggested line items.
func (c *Client) Parse(ctx context.Context, text string) ([]Item, error) {
	if c == nil || c.BaseURL == "" {
		return nil, fmt.Errorf("parse: client not configured")
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, text)}}}},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.BaseURL, "/"), c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-goog-api-key", c.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("parse: model response %d: %s", resp.StatusCode, string(data))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("parse: decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, nil
	}

	return decodeItems(decoded.Candidates[0].Content.Parts[0].Text)
}

// decodeItems tolerates the model wrapping its JSON in a fenced block.
func decodeItems(raw string) ([]Item, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse: decode items: %w", err)
	}
	return items, nil
}
