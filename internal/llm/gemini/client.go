package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/llm"
)

// Client backs the llm contracts with Google Gemini. Useful as the classifier
// backend when the extraction key has no Gemini quota, or vice versa.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

func NewClient(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.05)

	return &Client{client: client, model: model, logger: logger}, nil
}

// StructureItems implements llm.Structurer.
func (c *Client) StructureItems(ctx context.Context, req llm.ItemsRequest) ([]entity.DraftItem, []byte, error) {
	text, err := c.generate(ctx, llm.BuildItemsSystemPrompt()+"\n\n"+llm.BuildReceiptUserPrompt(req.ReceiptText))
	if err != nil {
		return nil, nil, err
	}
	items := llm.DecodeItems([]byte(text), req, c.logger)
	c.logger.Info("llm.items.ok", "backend", "gemini", "items", len(items))
	return items, []byte(text), nil
}

// ExtractSummary implements llm.Summarizer.
func (c *Client) ExtractSummary(ctx context.Context, req llm.SummaryRequest) (entity.ReceiptSummary, []byte) {
	text, err := c.generate(ctx, llm.BuildSummarySystemPrompt()+"\n\n"+llm.BuildReceiptUserPrompt(req.ReceiptText))
	if err != nil {
		c.logger.Warn("llm.summary.degraded", "backend", "gemini", "error", err)
		return entity.ZeroSummary(), nil
	}
	return llm.DecodeSummary([]byte(text), c.logger), []byte(text)
}

// Classify implements llm.Classifier.
func (c *Client) Classify(ctx context.Context, req llm.ClassifyRequest) (string, error) {
	text, err := c.generate(ctx, llm.BuildClassifySystemPrompt(req.Categories)+"\n\n"+llm.BuildClassifyUserPrompt(req.Description))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", mapAPIError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// mapAPIError lifts auth and quota failures onto the llm sentinels.
func mapAPIError(err error) error {
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated, codes.PermissionDenied:
			return fmt.Errorf("gemini: %v: %w", st.Message(), llm.ErrAuth)
		case codes.ResourceExhausted:
			return fmt.Errorf("gemini: %v: %w", st.Message(), llm.ErrQuota)
		}
	}
	return fmt.Errorf("generating content: %w", err)
}

// Close releases the underlying client connection.
func (c *Client) Close() error {
	return c.client.Close()
}
