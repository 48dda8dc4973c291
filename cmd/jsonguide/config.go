package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/deepankarm/jsonguide/pkg/ginguide"
	"github.com/deepankarm/jsonguide/internal/logging"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// Config is the on-disk configuration of the jsonguide command.
//
//	server:
//	  addr: ":8080"
//	  max_text_bytes: 65536
//	log:
//	  level: debug
//	  json: true
//	schemas:
//	  capital:
//	    type: object
//	    properties:
//	      country: {type: string}
//	      capital: {type: string}
type Config struct {
	Server  ServerConfig            `yaml:"server"`
	Log     logging.Config          `yaml:"log"`
	Schemas map[string]*schema.Node `yaml:"schemas" validate:"dive,keys,required,endkeys,required"`
}

// ServerConfig configures the HTTP service started by "serve".
type ServerConfig struct {
	Addr         string `yaml:"addr" validate:"required,hostname_port"`
	MaxTextBytes int    `yaml:"max_text_bytes" validate:"gt=0"`
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			MaxTextBytes: ginguide.DefaultMaxTextBytes,
		},
		Log: logging.Config{Level: "info"},
	}
}

// LoadConfig reads a YAML configuration file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks the configuration against its struct tags.
func (cfg *Config) Validate() error {
	err := configValidate.Struct(cfg)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
