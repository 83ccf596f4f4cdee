package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/K-vino/promptgpt-suite-vmd/agents"
	"github.com/K-vino/promptgpt-suite-vmd/components"
	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
)

// Chat commands typed at the prompt
const (
	chatExit   = "/exit"
	chatReset  = "/reset"
	chatExport = "/export"
)

func (c *cli) chatCmd() *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the prompt assistant",
		Long: fmt.Sprintf(`Starts a conversation read line by line from standard input.
%s clears the conversation, %s prints it as markdown and %s quits.`, chatReset, chatExport, chatExit),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.agentOptions()
			if err != nil {
				return err
			}
			chat := agents.NewChat(opts, agents.WithMemory(components.NewMemory(c.cfg.Chat.MaxMessages)))
			if err := c.converse(cmd, chat); err != nil {
				return err
			}
			if exportPath != "" {
				return os.WriteFile(exportPath, []byte(chat.Export()), 0o644)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the conversation as markdown to this file on exit")
	return cmd
}

func (c *cli) converse(cmd *cobra.Command, chat *agents.Chat) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case chatExit:
			return nil
		case chatReset:
			chat.Reset()
			fmt.Fprintln(out, "Chat history cleared.")
			continue
		case chatExport:
			fmt.Fprint(out, chat.Export())
			continue
		}
		resp, err := chat.Send(cmd.Context(), line)
		if errors.Is(err, llm.ErrCredentialMissing) {
			return c.explain(err)
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), c.explain(err))
			continue
		}
		if resp.Blocked {
			fmt.Fprintln(cmd.ErrOrStderr(), resp.Feedback)
			continue
		}
		fmt.Fprintf(out, "AI: %s\n", resp.Text)
	}
}
