package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type openaiTransport struct {
	client *openai.Client
	model  string
}

// OpenAIDialer returns a Dialer for OpenAI compatible chat completion APIs
func OpenAIDialer(ep Endpoint) Dialer {
	return func(_ context.Context, apiKey string, model string) (Transport, error) {
		cfg := openai.DefaultConfig(apiKey)
		if ep.BaseURL != "" {
			cfg.BaseURL = ep.BaseURL
		}
		if ep.HTTPClient != nil {
			cfg.HTTPClient = ep.HTTPClient
		}
		return &openaiTransport{client: openai.NewClientWithConfig(cfg), model: model}, nil
	}
}

func (t *openaiTransport) Generate(ctx context.Context, req *Request) (*Reply, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               t.model,
		Temperature:         req.Generation.Temperature,
		TopP:                req.Generation.TopP,
		MaxCompletionTokens: req.Generation.MaxOutputTokens,
		Messages:            make([]openai.ChatCompletionMessage, 0, len(req.History)+2),
	}
	if req.SystemInstruction != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, turn := range req.History {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text})
	}
	chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Payload,
	})
	resp, err := t.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	reply := &Reply{
		ID:         resp.ID,
		Model:      resp.Model,
		Candidates: len(resp.Choices),
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		reply.Text = choice.Message.Content
		reply.FinishReason = string(choice.FinishReason)
		if choice.FinishReason == openai.FinishReasonContentFilter {
			reply.BlockReason = string(choice.FinishReason)
		}
	}
	if resp.Usage.PromptTokens > 0 || resp.Usage.CompletionTokens > 0 {
		reply.Usage = &schema.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		}
	}
	return reply, nil
}
