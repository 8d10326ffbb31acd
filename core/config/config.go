package config

import (
	_ "embed"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/minishell.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "minishell.yaml"
)

type Configuration struct {
	// Prompt is shown before each interactive line, %d is replaced by the
	// status of the last line.
	Prompt      string `json:"prompt" validate:"required"`
	Color       string `json:"color" validate:"oneof=always auto never"`
	LogLevel    string `json:"log_level" validate:"oneof=debug info warn error"`
	HistorySize int    `json:"history_size" validate:"gte=0"`
	// Path is the search path for programs when PATH isn't set.
	Path string `json:"path" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// FormatPrompt renders the prompt for the given last status.
func (c *Configuration) FormatPrompt(status int) string {
	return strings.ReplaceAll(c.Prompt, "%d", strconv.Itoa(status))
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
