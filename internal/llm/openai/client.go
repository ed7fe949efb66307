package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/llm"
)

// StructureItems implements llm.Structurer using text-only chat/completions.
func (c *Client) StructureItems(ctx context.Context, req llm.ItemsRequest) ([]entity.DraftItem, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.items.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.ReceiptText),
	)

	schema := llm.BuildItemsJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildItemsSystemPrompt()},
			{"role": "user", "content": llm.BuildReceiptUserPrompt(req.ReceiptText)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		c.logger.Error("llm.items.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}

	items := llm.DecodeItems(content, req, c.logger)

	c.logger.Info("llm.items.ok",
		"req_id", rid,
		"items", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return items, content, nil
}

// ExtractSummary implements llm.Summarizer. Total by contract: transport or
// decode failures degrade to the zero summary so a scan never dies here.
func (c *Client) ExtractSummary(ctx context.Context, req llm.SummaryRequest) (entity.ReceiptSummary, []byte) {
	rid := uuid.New().String()
	start := time.Now()

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSummarySystemPrompt()},
			{"role": "user", "content": llm.BuildReceiptUserPrompt(req.ReceiptText)},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		c.logger.Warn("llm.summary.degraded",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ZeroSummary(), nil
	}

	out := llm.DecodeSummary(content, c.logger)
	c.logger.Info("llm.summary.ok",
		"req_id", rid,
		"store", out.Store,
		"total", out.Total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content
}

// Classify implements llm.Classifier. The category name comes back as plain
// text; canonicalization to the closed set is the caller's job.
func (c *Client) Classify(ctx context.Context, req llm.ClassifyRequest) (string, error) {
	body := map[string]any{
		"model":       c.cfg.ClassifierModel,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildClassifySystemPrompt(req.Categories)},
			{"role": "user", "content": llm.BuildClassifyUserPrompt(req.Description)},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

// chat posts a chat/completions body and returns the first choice's content.
func (c *Client) chat(ctx context.Context, body map[string]any) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.logger.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, mapAPIError(resp.StatusCode, buf.Bytes())
	}
	return buf.Bytes(), nil
}

// mapAPIError lifts auth and quota failures onto the llm sentinels so retry
// loops stop immediately instead of burning attempts on a dead key.
func mapAPIError(status int, body []byte) error {
	var er struct {
		Error struct {
			Code string `json:"code"`
			Type string `json:"type"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &er)

	switch {
	case status == http.StatusUnauthorized || er.Error.Code == "invalid_api_key":
		return fmt.Errorf("openai status %d: %w", status, llm.ErrAuth)
	case er.Error.Code == "insufficient_quota" || er.Error.Type == "insufficient_quota":
		return fmt.Errorf("openai status %d: %w", status, llm.ErrQuota)
	default:
		return fmt.Errorf("openai status %d: %s", status, truncate(body, 2<<10))
	}
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "...(truncated)"
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
