package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepankarm/jsonguide/pkg/ginguide"
	"github.com/deepankarm/jsonguide/pkg/jsonguide"
)

func newCompleteCmd(ro *rootOptions) *cobra.Command {
	var (
		so     schemaOptions
		text   string
		prompt string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Print the legal continuations of partial output",
		Example: `  jsonguide complete -s '{"type":"boolean"}' --text tr
  jsonguide complete -f capital.yaml --prompt 'Answer:' < transcript.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			node, err := so.load(ro.cfg)
			if err != nil {
				return err
			}
			input, err := readText(cmd, text)
			if err != nil {
				return err
			}

			var c jsonguide.Constrainer = jsonguide.NewSchemaConstrainer(node)
			if prompt != "" {
				c = jsonguide.AfterPrompt(prompt, c)
			}
			completion := c.Complete(input)
			ro.logger.Debug("completed",
				"schema", node.Kind().String(),
				"bytes", len(input),
				"mode", completion.Mode().String(),
				"fragments", completion.Len())

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), ginguide.NewCompleteResponse(completion))
			}
			return printCompletion(cmd.OutOrStdout(), completion)
		},
	}
	so.addFlags(cmd)
	cmd.Flags().StringVarP(&text, "text", "t", "", "partial output (default: read stdin)")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "ignore everything up to and including this prompt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the completion as JSON")
	return cmd
}

func printCompletion(w io.Writer, c jsonguide.Completion) error {
	if _, err := fmt.Fprintf(w, "mode: %s\n", c.Mode()); err != nil {
		return err
	}
	for _, f := range c.Fragments() {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func newFindEndCmd(ro *rootOptions) *cobra.Command {
	var (
		so     schemaOptions
		text   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "find-end",
		Short: "Print where the value at the start of the text ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			node, err := so.load(ro.cfg)
			if err != nil {
				return err
			}
			input, err := readText(cmd, text)
			if err != nil {
				return err
			}
			pos := jsonguide.FindEnd(input, node)
			ro.logger.Debug("located end", "bytes", len(input), "position", pos.String())

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), ginguide.FindEndResponse{State: pos.State.String(), Offset: pos.Offset})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pos)
			return err
		},
	}
	so.addFlags(cmd)
	cmd.Flags().StringVarP(&text, "text", "t", "", "output to scan (default: read stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the position as JSON")
	return cmd
}

func newPreviewCmd(ro *rootOptions) *cobra.Command {
	var (
		so   schemaOptions
		text string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Repair partial output into a schema-shaped JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			node, err := so.load(ro.cfg)
			if err != nil {
				return err
			}
			input, err := readText(cmd, text)
			if err != nil {
				return err
			}
			result, err := jsonguide.Preview(input, node)
			if err != nil {
				return err
			}
			ro.logger.Debug("previewed", "bytes", len(input), "incomplete", len(result.Incomplete))
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	so.addFlags(cmd)
	cmd.Flags().StringVarP(&text, "text", "t", "", "partial output (default: read stdin)")
	return cmd
}

// newCheckCmd validates the inputs of a guided generation run without doing
// any work: the model path when one is given, then the schema.
func newCheckCmd(ro *rootOptions) *cobra.Command {
	var (
		so        schemaOptions
		modelPath string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a schema (and optionally a model path)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if modelPath != "" {
				if err := checkModelPath(modelPath); err != nil {
					return err
				}
			}
			node, err := so.load(ro.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s schema\n", node.Kind())
			return err
		},
	}
	so.addFlags(cmd)
	cmd.Flags().StringVar(&modelPath, "model-path", "", "path to a .gguf model file")
	return cmd
}

func checkModelPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("the model path %q does not exist", path)
	}
	if info.IsDir() {
		return fmt.Errorf("the model path %q is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".gguf") {
		return fmt.Errorf("the model path %q is not a .gguf file", path)
	}
	return nil
}
