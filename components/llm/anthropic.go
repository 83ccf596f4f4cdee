package llm

import (
	"context"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type anthropicTransport struct {
	client *anthropic.Client
	model  string
}

// AnthropicDialer returns a Dialer for the Anthropic messages API
func AnthropicDialer(ep Endpoint) Dialer {
	return func(_ context.Context, apiKey string, model string) (Transport, error) {
		opts := make([]anthropic.ClientOption, 0, 2)
		if ep.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(ep.BaseURL))
		}
		if ep.HTTPClient != nil {
			opts = append(opts, anthropic.WithHTTPClient(ep.HTTPClient))
		}
		return &anthropicTransport{client: anthropic.NewClient(apiKey, opts...), model: model}, nil
	}
}

func (t *anthropicTransport) Generate(ctx context.Context, req *Request) (*Reply, error) {
	temperature := req.Generation.Temperature
	topP := req.Generation.TopP
	chatReq := anthropic.MessagesRequest{
		Model:       anthropic.Model(t.model),
		System:      req.SystemInstruction,
		MaxTokens:   req.Generation.MaxOutputTokens,
		Temperature: &temperature,
		TopP:        &topP,
		Messages:    make([]anthropic.Message, 0, len(req.History)+1),
	}
	if req.Generation.TopK > 0 {
		topK := req.Generation.TopK
		chatReq.TopK = &topK
	}
	for _, turn := range req.History {
		role := anthropic.RoleUser
		if turn.Role == RoleModel {
			role = anthropic.RoleAssistant
		}
		chatReq.Messages = append(chatReq.Messages, anthropic.Message{
			Role:    role,
			Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(turn.Text)},
		})
	}
	chatReq.Messages = append(chatReq.Messages, anthropic.Message{
		Role:    anthropic.RoleUser,
		Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(req.Payload)},
	})
	resp, err := t.client.CreateMessages(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(resp.Content))
	for _, c := range resp.Content {
		if txt := c.GetText(); txt != "" {
			texts = append(texts, txt)
		}
	}
	reply := &Reply{
		ID:           resp.ID,
		Model:        string(resp.Model),
		Text:         strings.Join(texts, ""),
		Candidates:   len(resp.Content),
		FinishReason: string(resp.StopReason),
	}
	if resp.Usage.InputTokens > 0 || resp.Usage.OutputTokens > 0 {
		reply.Usage = &schema.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		}
	}
	return reply, nil
}
