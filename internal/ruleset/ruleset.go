package ruleset

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sethgrid/tamagotchi/internal/pet"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTOML, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (want toml or yaml)", s)
}

// Write prints the rule set a session plays by.
func Write(w io.Writer, rules pet.Rules, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(rules)
	case FormatTOML:
		data, err = toml.Marshal(rules)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write rules: %w", err)
	}
	return nil
}
