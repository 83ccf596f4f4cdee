package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/K-vino/promptgpt-suite-vmd/components/library"
	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt/blocks"
)

func (c *cli) libraryCmd() *cobra.Command {
	var (
		filter  library.Filter
		file    string
		id      int
		listing string
	)
	cmd := &cobra.Command{
		Use:   "library [query]",
		Short: "Browse the prompt library",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch listing {
			case "":
			case "categories":
				fmt.Fprintln(out, strings.Join(lib.Categories(), "\n"))
				return nil
			case "tags":
				fmt.Fprintln(out, strings.Join(lib.Tags(), "\n"))
				return nil
			default:
				return fmt.Errorf("unknown listing %q, want categories or tags", listing)
			}
			if id > 0 {
				e, ok := lib.Get(id)
				if !ok {
					return fmt.Errorf("no prompt with id %d", id)
				}
				fmt.Fprintln(out, e.Prompt)
				return nil
			}
			filter.Query = joinArgs(args)
			entries := lib.Find(filter)
			fmt.Fprintf(out, "Available Prompts (%d found)\n", len(entries))
			for _, e := range entries {
				fmt.Fprintf(out, "\n[%d] %s (%s)\n", e.ID, e.Name, e.Category)
				fmt.Fprintf(out, "Tags: %s | Tone: %s | Format: %s | Complexity: %s\n",
					strings.Join(e.Tags, ", "), e.Tone, e.Format, e.Complexity)
				fmt.Fprintln(out, e.Prompt)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&filter.Category, "category", library.AllCategories, "only prompts of this category")
	fs.StringSliceVar(&filter.Tags, "tag", nil, "only prompts carrying any of these tags")
	fs.StringVar(&file, "file", "", "read the catalog from a YAML file instead of the built-in one")
	fs.IntVar(&id, "id", 0, "print only the prompt text of this entry")
	fs.StringVar(&listing, "list", "", "list categories or tags instead of prompts")
	return cmd
}

func loadLibrary(file string) (*library.Library, error) {
	if file == "" {
		return library.Builtin()
	}
	return library.Load(file)
}

func (c *cli) blocksCmd() *cobra.Command {
	var (
		selected []string
		data     blocks.Data
	)
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Assemble a prompt from building blocks",
		Long:  "Blocks are rendered in the order given by --block: " + blockList(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := make([]blocks.Block, 0, len(selected))
			for _, s := range selected {
				b, err := blocks.ParseBlock(s)
				if err != nil {
					return err
				}
				list = append(list, b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), blocks.Assemble(list, data))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVarP(&selected, "block", "b", nil, "blocks to include, in order")
	fs.StringVar(&data.Task, "task", "", "task definition")
	fs.StringVar(&data.Tone, "tone", "", "tone")
	fs.StringVar(&data.Format, "format", "", "output format")
	fs.StringArrayVar(&data.Constraints, "constraint", nil, "a constraint, repeatable")
	fs.StringVar(&data.Role, "role", "", "role the model assumes")
	fs.StringVar(&data.Persona, "persona", "", "persona description")
	fs.StringVar(&data.Audience, "audience", "", "target audience")
	fs.StringVar(&data.Context, "context", "", "context information")
	fs.IntVar(&data.OutputLength, "length", 0, "approximate output length in words")
	return cmd
}

func blockList() string {
	names := make([]string, 0, len(blocks.Blocks))
	for _, b := range blocks.Blocks {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}
