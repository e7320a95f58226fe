package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/funexpr/internal/functions"
	"github.com/funvibe/funexpr/pkg/embed"
)

// environmentFile is the YAML shape of funexpr.yaml:
//
//	variables:
//	  greeting: "hello"
//	  retries: 3
//	functions: [split, len]   # optional whitelist of standard functions
type environmentFile struct {
	Variables map[string]any `yaml:"variables"`
	Functions []string       `yaml:"functions"`
}

func loadEnvironmentFile(path string) (*environmentFile, error) {
	envFile := &environmentFile{}

	if path == "" {
		return envFile, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading environment file: %w", err)
	}

	if err := yaml.Unmarshal(content, envFile); err != nil {
		return nil, fmt.Errorf("parsing environment file %s: %w", path, err)
	}

	return envFile, nil
}

func (e *environmentFile) buildEnvironment() *embed.Environment {
	builder := embed.NewEnvironmentBuilder()
	for name, value := range e.Variables {
		builder.WithStaticVariable(name, value)
	}
	return builder.Build()
}

// buildRegistry returns the full standard registry, or a filtered one when
// the environment file whitelists functions.
func (e *environmentFile) buildRegistry() *functions.Registry {
	full := functions.NewStandardRegistry()

	if len(e.Functions) == 0 {
		return full
	}

	filtered := functions.NewEmptyRegistry()
	for _, name := range e.Functions {
		if fn := full.Lookup(name); fn != nil {
			filtered.Register(name, fn)
		}
	}
	return filtered
}
