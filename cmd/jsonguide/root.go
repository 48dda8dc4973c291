package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepankarm/jsonguide/internal/logging"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

var (
	errNotJSON   = errors.New("the JSON schema is not valid JSON")
	errNotSchema = errors.New("the JSON schema is not a valid JSON schema")
)

// rootOptions is shared by every subcommand. cfg and logger are set in
// PersistentPreRunE, before any RunE.
type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg    *Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "jsonguide",
		Short: "Schema-guided completion of partial JSON output",
		Long: `jsonguide computes which continuations keep partial model output a valid
instance of a JSON schema, where that output ends, and what it looks like so far.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ro.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&ro.logJSON, "log-json", false, "log in JSON format")

	cmd.AddCommand(
		newCompleteCmd(ro),
		newFindEndCmd(ro),
		newPreviewCmd(ro),
		newCheckCmd(ro),
		newServeCmd(ro),
	)
	return cmd
}

func (ro *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig(ro.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = ro.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = ro.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Log.Service = "jsonguide"
	cfg.Log.Output = cmd.ErrOrStderr()

	ro.cfg = cfg
	ro.logger = logging.New(cfg.Log)
	return nil
}

// schemaOptions selects the schema a command works on: inline JSON, a JSON
// or YAML file, or a schema named in the configuration.
type schemaOptions struct {
	inline string
	file   string
	name   string
}

func (so *schemaOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&so.inline, "schema", "s", "", "JSON schema, inline")
	cmd.Flags().StringVarP(&so.file, "schema-file", "f", "", "JSON or YAML schema file")
	cmd.Flags().StringVarP(&so.name, "schema-name", "n", "", "name of a schema from the configuration")
	cmd.MarkFlagsMutuallyExclusive("schema", "schema-file", "schema-name")
	cmd.MarkFlagsOneRequired("schema", "schema-file", "schema-name")
}

func (so *schemaOptions) load(cfg *Config) (*schema.Node, error) {
	switch {
	case so.name != "":
		node, ok := cfg.Schemas[so.name]
		if !ok {
			return nil, fmt.Errorf("unknown schema %q", so.name)
		}
		return node, nil
	case so.file != "":
		data, err := os.ReadFile(so.file)
		if err != nil {
			return nil, fmt.Errorf("reading schema: %w", err)
		}
		switch strings.ToLower(filepath.Ext(so.file)) {
		case ".yaml", ".yml":
			node, err := schema.ParseYAML(data)
			return node, schemaError(err)
		}
		node, err := schema.Parse(data)
		return node, schemaError(err)
	default:
		node, err := schema.Parse([]byte(so.inline))
		return node, schemaError(err)
	}
}

// schemaError tells a document that is not JSON at all apart from one that
// is JSON but not a usable schema.
func schemaError(err error) error {
	if err == nil {
		return nil
	}
	var errs schema.Errors
	if !errors.As(err, &errs) {
		return err
	}
	if errs.Has(schema.ErrorTypeJSONDecode) {
		return fmt.Errorf("%w: %v", errNotJSON, err)
	}
	return fmt.Errorf("%w: %v", errNotSchema, err)
}

// readText returns the --text flag when given, otherwise all of stdin
// verbatim. Trailing newlines are part of the text.
func readText(cmd *cobra.Command, text string) (string, error) {
	if cmd.Flags().Changed("text") {
		return text, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
