package llm

import (
	"context"

	"google.golang.org/genai"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type geminiTransport struct {
	client *genai.Client
	model  string
}

// GeminiDialer returns a Dialer for the Gemini API
func GeminiDialer(ep Endpoint) Dialer {
	return func(ctx context.Context, apiKey string, model string) (Transport, error) {
		cfg := &genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: ep.HTTPClient,
		}
		if ep.BaseURL != "" {
			cfg.HTTPOptions.BaseURL = ep.BaseURL
		}
		clt, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &geminiTransport{client: clt, model: model}, nil
	}
}

func (t *geminiTransport) Generate(ctx context.Context, req *Request) (*Reply, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, genai.NewContentFromText(turn.Text, geminiRole(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(req.Payload, genai.RoleUser))
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Generation.Temperature),
		TopP:            genai.Ptr(req.Generation.TopP),
		CandidateCount:  1,
		MaxOutputTokens: int32(req.Generation.MaxOutputTokens),
	}
	if req.Generation.TopK > 0 {
		cfg.TopK = genai.Ptr(float32(req.Generation.TopK))
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	for _, s := range req.Safety {
		cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
			Category:  genai.HarmCategory(s.Category),
			Threshold: genai.HarmBlockThreshold(s.Threshold),
		})
	}
	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, cfg)
	if err != nil {
		return nil, err
	}
	reply := &Reply{
		ID:         resp.ResponseID,
		Model:      t.model,
		Text:       resp.Text(),
		Candidates: len(resp.Candidates),
	}
	if resp.ModelVersion != "" {
		reply.Model = resp.ModelVersion
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		reply.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if fb := resp.PromptFeedback; fb != nil {
		reply.BlockReason = string(fb.BlockReason)
		reply.BlockMessage = fb.BlockReasonMessage
	}
	if u := resp.UsageMetadata; u != nil && (u.PromptTokenCount > 0 || u.CandidatesTokenCount > 0) {
		reply.Usage = &schema.Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
		}
	}
	return reply, nil
}

func geminiRole(role string) genai.Role {
	if role == RoleModel {
		return genai.RoleModel
	}
	return genai.RoleUser
}
