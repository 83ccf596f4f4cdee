package formatter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/K-vino/promptgpt-suite-vmd/tools"
)

var (
	// ErrEmptyPrompt is returned by the tool when the prompt is blank
	ErrEmptyPrompt = errors.New("prompt must not be empty")
	// ErrUnsupportedFormat is returned for an unknown target format
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format is a target layout for a finished prompt
type Format string

const (
	Plaintext   Format = "plaintext"
	Markdown    Format = "markdown"
	JSON        Format = "json"
	API         Format = "api"
	Slack       Format = "slack"
	CodeComment Format = "code-comment"
)

// Formats lists every supported format in display order
var Formats = []Format{Plaintext, Markdown, JSON, API, Slack, CodeComment}

// CommentStyles lists the comment prefixes offered for CodeComment
var CommentStyles = []string{"#", "//", "<!--", "/*"}

const (
	DefaultCommentStyle = "#"
	slackFooter         = "_Send this to your favorite AI bot!_"
)

var formatAliases = map[string]Format{
	"plaintext":                   Plaintext,
	"text":                        Plaintext,
	"markdown":                    Markdown,
	"md":                          Markdown,
	"json":                        JSON,
	"json (basic)":                JSON,
	"api":                         API,
	"api-compatible":              API,
	"api-compatible (conceptual)": API,
	"slack":                       Slack,
	"slack-friendly":              Slack,
	"slack-friendly (conceptual)": Slack,
	"code-comment":                CodeComment,
	"code comment":                CodeComment,
	"code comment (conceptual)":   CodeComment,
}

// ParseFormat maps a key or display name to its Format
func ParseFormat(v string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(v))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, v)
}

type renderer func(prompt string, commentStyle string) (string, error)

var renderers = map[Format]renderer{
	Plaintext:   renderPlain,
	Markdown:    renderMarkdown,
	JSON:        renderJSON,
	API:         renderAPI,
	Slack:       renderSlack,
	CodeComment: renderComment,
}

// Apply renders prompt in the target format. A blank prompt yields "".
// commentStyle only applies to CodeComment and defaults to "#".
func Apply(prompt string, format Format, commentStyle string) (string, error) {
	render, ok := renderers[format]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", nil
	}
	return render(prompt, commentStyle)
}

func fence(p string) string {
	return "```\n" + p + "\n```"
}

func renderPlain(p string, _ string) (string, error) {
	return p, nil
}

func renderMarkdown(p string, _ string) (string, error) {
	return fence(p), nil
}

func renderSlack(p string, _ string) (string, error) {
	return fence(p) + "\n" + slackFooter, nil
}

func renderJSON(p string, _ string) (string, error) {
	return marshalIndent(struct {
		Prompt        string `json:"prompt"`
		FormatApplied string `json:"format_applied"`
	}{Prompt: p, FormatApplied: "JSON"})
}

// renderAPI emits a generateContent request body
func renderAPI(p string, _ string) (string, error) {
	return marshalIndent(struct {
		Contents []*genai.Content `json:"contents"`
	}{Contents: genai.Text(p)})
}

func renderComment(p string, style string) (string, error) {
	if style = strings.TrimSpace(style); style == "" {
		style = DefaultCommentStyle
	}
	lines := strings.Split(p, "\n")
	out := make([]string, 0, len(lines)+2)
	out = append(out, style+" --- START AI PROMPT ---")
	for _, l := range lines {
		out = append(out, style+" "+l)
	}
	out = append(out, style+" --- END AI PROMPT ---")
	return strings.Join(out, "\n"), nil
}

func marshalIndent(v any) (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Input of the formatter tool
type Input struct {
	// Prompt the prompt to format
	Prompt string `json:"prompt"`
	// Format the target format key or display name
	Format string `json:"format"`
	// CommentStyle comment prefix for the code-comment format
	CommentStyle string `json:"comment_style,omitempty"`
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output of the formatter tool
type Output struct {
	Format Format `json:"format"`
	Text   string `json:"text"`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Tool formats a finished prompt for a target platform
type Tool struct {
	tools.Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("PromptFormatterTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Formats a prompt for a target platform")
	}
	return ret
}

func (t *Tool) Run(_ context.Context, input *Input) (*Output, error) {
	if input == nil || strings.TrimSpace(input.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	format, err := ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}
	t.Logger().Debug("format prompt", zap.String("format", string(format)))
	text, err := Apply(input.Prompt, format, input.CommentStyle)
	if err != nil {
		return nil, err
	}
	return &Output{Format: format, Text: text}, nil
}
