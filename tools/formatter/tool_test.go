package formatter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestApply(t *testing.T) {
	prompt := "Write a poem.\nKeep it short."
	tests := []struct {
		format Format
		style  string
		want   string
	}{
		{Plaintext, "", prompt},
		{Markdown, "", "```\n" + prompt + "\n```"},
		{Slack, "", "```\n" + prompt + "\n```\n_Send this to your favorite AI bot!_"},
		{CodeComment, "", "# --- START AI PROMPT ---\n# Write a poem.\n# Keep it short.\n# --- END AI PROMPT ---"},
		{CodeComment, "//", "// --- START AI PROMPT ---\n// Write a poem.\n// Keep it short.\n// --- END AI PROMPT ---"},
		{JSON, "", "{\n  \"prompt\": \"Write a poem.\\nKeep it short.\",\n  \"format_applied\": \"JSON\"\n}"},
	}
	for _, tt := range tests {
		got, err := Apply(prompt, tt.format, tt.style)
		if err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("%s: got\n%s\nwant\n%s", tt.format, got, tt.want)
		}
	}
}

func TestApplyAPI(t *testing.T) {
	prompt := `Say "hi" & <wave>`
	got, err := Apply(prompt, API, "")
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	if err := json.Unmarshal([]byte(got), &body); err != nil {
		t.Fatalf("api body is not json: %v\n%s", err, got)
	}
	if len(body.Contents) != 1 || body.Contents[0].Role != "user" {
		t.Fatalf("unexpected contents: %s", got)
	}
	if parts := body.Contents[0].Parts; len(parts) != 1 || parts[0].Text != prompt {
		t.Errorf("prompt not carried verbatim: %s", got)
	}
}

func TestApplyEmptyAndUnknown(t *testing.T) {
	for _, f := range Formats {
		got, err := Apply("  \n", f, "")
		if err != nil || got != "" {
			t.Errorf("%s: blank prompt got %q, %v", f, got, err)
		}
	}
	if _, err := Apply("prompt", "yaml", ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expect ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"Plaintext":                    Plaintext,
		"JSON (basic)":                 JSON,
		" API-compatible (conceptual)": API,
		"Slack-friendly":               Slack,
		"Code Comment (conceptual)":    CodeComment,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseFormat("pdf"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expect ErrUnsupportedFormat, got %v", err)
	}
}

func TestToolRun(t *testing.T) {
	tool := New()
	ctx := context.Background()
	if _, err := tool.Run(ctx, &Input{Prompt: " ", Format: "markdown"}); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expect ErrEmptyPrompt, got %v", err)
	}
	if _, err := tool.Run(ctx, &Input{Prompt: "hi", Format: "pdf"}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expect ErrUnsupportedFormat, got %v", err)
	}
	out, err := tool.Run(ctx, &Input{Prompt: "hi", Format: "Code Comment", CommentStyle: "<!--"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Format != CodeComment || out.Text != "<!-- --- START AI PROMPT ---\n<!-- hi\n<!-- --- END AI PROMPT ---" {
		t.Errorf("unexpected output %s", out)
	}
}

func ExampleApply() {
	out, _ := Apply("Summarize the meeting notes.", Slack, "")
	fmt.Println(out)
	// Output:
	// ```
	// Summarize the meeting notes.
	// ```
	// _Send this to your favorite AI bot!_
}
