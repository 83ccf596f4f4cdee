package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type fakeTransport struct {
	mtx   sync.Mutex
	calls int
	last  *Request
	reply *Reply
	err   error
	panic any
}

func (f *fakeTransport) Generate(_ context.Context, req *Request) (*Reply, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.calls++
	f.last = req
	if f.panic != nil {
		panic(f.panic)
	}
	return f.reply, f.err
}

func (f *fakeTransport) Calls() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.calls
}

type fakeDialer struct {
	transport *fakeTransport
	err       error
	dials     int
	keys      []string
}

func (d *fakeDialer) Dial(_ context.Context, apiKey string, model string) (Transport, error) {
	d.dials++
	d.keys = append(d.keys, apiKey+"/"+model)
	if d.err != nil {
		return nil, d.err
	}
	return d.transport, nil
}

func newTestClient(t *testing.T, tr *fakeTransport, opts ...Option) (*Client, *fakeDialer) {
	t.Helper()
	d := &fakeDialer{transport: tr}
	clt, err := New(append([]Option{WithDialer(d.Dial)}, opts...)...)
	require.NoError(t, err)
	return clt, d
}

func TestGenerateMissingCredential(t *testing.T) {
	tr := &fakeTransport{reply: &Reply{Text: "hello"}}
	clt, d := newTestClient(t, tr)
	for _, key := range []string{"", "   "} {
		resp, err := clt.Generate(context.Background(), key, "payload")
		assert.ErrorIs(t, err, ErrCredentialMissing)
		assert.Nil(t, resp)
	}
	assert.Equal(t, 0, tr.Calls())
	assert.Equal(t, 0, d.dials)
	assert.Equal(t, int64(2), clt.Stats().MissingCredential)
}

func TestGenerateText(t *testing.T) {
	tr := &fakeTransport{reply: &Reply{
		Text:         "Write a haiku about the sea, in five-seven-five syllables.",
		Candidates:   1,
		FinishReason: "STOP",
		Usage:        &schema.Usage{InputTokens: 12, OutputTokens: 14},
	}}
	clt, _ := newTestClient(t, tr)
	resp, err := clt.Generate(context.Background(), "key", "payload")
	require.NoError(t, err)
	assert.False(t, resp.Blocked)
	assert.NoError(t, resp.Err())
	assert.Equal(t, tr.reply.Text, resp.Text)
	assert.Equal(t, 11, resp.WordCount)
	assert.Equal(t, 1, resp.SentenceCount)
	assert.Equal(t, 58, resp.CharacterCount)
	assert.Equal(t, DefaultModel, resp.Model)
	assert.Equal(t, "STOP", resp.FinishReason)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 14, resp.Usage.OutputTokens)

	req := tr.last
	assert.Equal(t, "payload", req.Payload)
	assert.Equal(t, DefaultGenerationConfig(), req.Generation)
	assert.Len(t, req.Safety, 4)
	for _, s := range req.Safety {
		assert.Equal(t, BlockMediumAndAbove, s.Threshold)
	}
}

func TestGenerateTransportError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	tr := &fakeTransport{err: cause}
	clt, _ := newTestClient(t, tr)
	var (
		resp *schema.ModelResponse
		err  error
	)
	assert.NotPanics(t, func() {
		resp, err = clt.Generate(context.Background(), "key", "payload")
	})
	assert.Nil(t, resp)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ProviderGemini, te.Provider)
	assert.Equal(t, DefaultModel, te.Model)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, 1, tr.Calls(), "transport errors are never retried")
	assert.Equal(t, int64(1), clt.Stats().Failures)
}

func TestGenerateTransportPanic(t *testing.T) {
	tr := &fakeTransport{panic: "boom"}
	clt, _ := newTestClient(t, tr)
	var err error
	assert.NotPanics(t, func() {
		_, err = clt.Generate(context.Background(), "key", "payload")
	})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "boom")
}

func TestGenerateDialError(t *testing.T) {
	clt, err := New(WithDialer(func(context.Context, string, string) (Transport, error) {
		return nil, errors.New("invalid endpoint")
	}))
	require.NoError(t, err)
	_, err = clt.Generate(context.Background(), "key", "payload")
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestGenerateBlocked(t *testing.T) {
	tests := []struct {
		name  string
		reply *Reply
		want  []string
	}{
		{
			name:  "no candidates",
			reply: &Reply{},
			want:  []string{"No text content in response.", "No candidates generated (potentially blocked by safety settings)."},
		},
		{
			name:  "prompt feedback",
			reply: &Reply{BlockReason: "SAFETY", BlockMessage: "harassment"},
			want:  []string{"Prompt feedback: SAFETY (harassment)."},
		},
		{
			name:  "safety finish",
			reply: &Reply{Candidates: 1, FinishReason: "SAFETY"},
			want:  []string{"Finish reason: SAFETY."},
		},
		{
			name:  "nil reply",
			reply: nil,
			want:  []string{"No candidates generated"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clt, _ := newTestClient(t, &fakeTransport{reply: tt.reply})
			resp, err := clt.Generate(context.Background(), "key", "payload")
			require.NoError(t, err, "blocked responses are not transport errors")
			require.NotNil(t, resp)
			assert.True(t, resp.Blocked)
			assert.Empty(t, resp.Text)
			for _, want := range tt.want {
				assert.Contains(t, resp.Feedback, want)
			}
			assert.ErrorIs(t, resp.Err(), schema.ErrContentBlocked)
			assert.Equal(t, int64(1), clt.Stats().Blocked)
		})
	}
}

func TestGenerateCallOptions(t *testing.T) {
	tr := &fakeTransport{reply: &Reply{Text: "ok", Candidates: 1}}
	clt, d := newTestClient(t, tr, WithModel("gemini-1.5-flash"))
	history := []Turn{{Role: RoleUser, Text: "hi"}, {Role: RoleModel, Text: "hello"}}
	_, err := clt.Generate(context.Background(), "key", "next",
		WithSystemInstruction("be brief"),
		WithHistory(history),
		WithCallModel("gemini-1.5-pro"),
	)
	require.NoError(t, err)
	assert.Equal(t, "be brief", tr.last.SystemInstruction)
	assert.Equal(t, history, tr.last.History)
	assert.Equal(t, "gemini-1.5-pro", tr.last.Model)
	assert.Equal(t, []string{"key/gemini-1.5-pro"}, d.keys)
}

func TestFactoryRekey(t *testing.T) {
	tr := &fakeTransport{reply: &Reply{Text: "ok", Candidates: 1}}
	clt, d := newTestClient(t, tr)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := clt.Generate(ctx, "key-a", "payload")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, d.dials, "same credential and model reuse the handle")
	_, err := clt.Generate(ctx, "key-b", "payload")
	require.NoError(t, err)
	assert.Equal(t, 2, d.dials, "a new credential builds a new handle")
	_, err = clt.Generate(ctx, "key-a", "payload")
	require.NoError(t, err)
	assert.Equal(t, 3, d.dials)
	assert.Equal(t, 3, clt.Factory().Dials())

	clt.Factory().Invalidate()
	_, err = clt.Generate(ctx, "key-a", "payload")
	require.NoError(t, err)
	assert.Equal(t, 4, d.dials)
}

func TestFactoryKeepsOldHandle(t *testing.T) {
	f := NewFactory(func(_ context.Context, apiKey string, _ string) (Transport, error) {
		return &fakeTransport{reply: &Reply{Text: apiKey}}, nil
	})
	ctx := context.Background()
	a, err := f.Get(ctx, "a", "m")
	require.NoError(t, err)
	b, err := f.Get(ctx, "b", "m")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	reply, err := a.Generate(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, "a", reply.Text)
}

func TestGenerateRateLimitCancelled(t *testing.T) {
	tr := &fakeTransport{reply: &Reply{Text: "ok", Candidates: 1}}
	clt, _ := newTestClient(t, tr, WithRateLimit(0.001, 1))
	ctx := context.Background()
	_, err := clt.Generate(ctx, "key", "payload")
	require.NoError(t, err)
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = clt.Generate(cancelled, "key", "payload")
	var te *TransportError
	assert.ErrorAs(t, err, &te)
	assert.Equal(t, 1, tr.Calls())
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(WithProvider("mistral"))
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestParseProvider(t *testing.T) {
	for in, want := range map[string]Provider{
		"gemini":    ProviderGemini,
		" Google ":  ProviderGemini,
		"OpenAI":    ProviderOpenAI,
		"claude":    ProviderAnthropic,
		"anthropic": ProviderAnthropic,
	} {
		got, err := ParseProvider(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseProvider("cohere")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
