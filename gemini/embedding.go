package gemini

import (
	"context"
	"fmt"

	gl "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hirerank/backend/config"
)

// EmbeddingClient produces text embeddings through the Gemini API. It backs
// the semantic half of the similarity score; when it is unavailable the
// analyzer falls back to keyword overlap on its own.
type EmbeddingClient struct {
	client *gl.Client
	model  *gl.EmbeddingModel
}

// NewEmbeddingClient creates an embedding client. It requires an API key;
// callers should skip construction and pass a nil provider when no key is
// configured.
func NewEmbeddingClient(ctx context.Context, cfg *config.Config) (*EmbeddingClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := gl.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	return &EmbeddingClient{
		client: client,
		model:  client.EmbeddingModel(cfg.EmbeddingModel),
	}, nil
}

// Close closes the underlying client
func (e *EmbeddingClient) Close() error {
	return e.client.Close()
}

// Embed returns the embedding vector for text.
func (e *EmbeddingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.model.EmbedContent(ctx, gl.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return resp.Embedding.Values, nil
}
