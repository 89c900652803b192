package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	embeddingModel = openai.EmbeddingModelTextEmbedding3Small

	// Must match the dimension the article index was created with; the
	// vector store rejects nothing on its own, so the check lives here.
	embeddingDimensions = 768
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

// Dimensions returns the embedding dimension this client produces. The
// article index must be created with the same dimension.
func (c *OpenAIClient) Dimensions() int {
	return embeddingDimensions
}

func (c *OpenAIClient) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model:      embeddingModel,
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Dimensions: openai.Int(embeddingDimensions),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings error: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		if len(item.Embedding) != embeddingDimensions {
			return nil, fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(item.Embedding), embeddingDimensions)
		}
		vector := make([]float32, len(item.Embedding))
		for j, v := range item.Embedding {
			vector[j] = float32(v)
		}
		vectors[i] = vector
	}

	return vectors, nil
}

func (c *OpenAIClient) GenerateJustification(ctx context.Context, input JustificationInput) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(justificationSystemPrompt),
			openai.UserMessage(buildJustificationPrompt(input)),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(justificationMaxTokens),
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response from openai")
	}

	return text, nil
}
