package config

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// ParseArgs parses the agent's command line into a *UserConfig.
//
// Flags:
//
//	-collector-config inline JSON configuration, optionally base64 encoded
//	-config-file path to a JSON configuration file
//	-collection-method capture method, "ebpf" or "core_bpf"
//
// Inline configuration takes precedence over the file. Returns (nil,
// nil) when no user configuration was supplied at all.
func ParseArgs() (*UserConfig, error) {
	return parseArgs(flag.NewFlagSet(os.Args[0], flag.ContinueOnError), os.Args[1:])
}

func parseArgs(fs *flag.FlagSet, args []string) (*UserConfig, error) {
	var inline, file, method string

	fs.StringVar(&inline, "collector-config", "", "Inline JSON configuration (optionally base64 encoded)")
	fs.StringVar(&file, "config-file", "", "JSON configuration file path")
	fs.StringVar(&method, "collection-method", "", "Capture method: ebpf or core_bpf")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing arguments: %w", err)
	}

	return newUserConfigBuilder().
		withCollectionMethod(method).
		withInline(inline).
		withFile(file).
		build()
}

// userConfigBuilder assembles the user configuration from its sources.
// Sources are merged in the order they are added; an earlier source wins
// for any field it sets.
type userConfigBuilder struct {
	configs []*UserConfig
	err     error
}

func newUserConfigBuilder() *userConfigBuilder {
	return &userConfigBuilder{
		configs: make([]*UserConfig, 0, 3),
	}
}

func (b *userConfigBuilder) build() (*UserConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building user configuration: %w", b.err)
	}

	if len(b.configs) == 0 {
		return nil, nil
	}

	user := new(UserConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(user, cfg); err != nil {
			return nil, fmt.Errorf("error merging user configurations: %w", err)
		}
	}

	return user, nil
}

func (b *userConfigBuilder) withCollectionMethod(method string) *userConfigBuilder {
	if method == "" {
		return b
	}

	b.configs = append(b.configs, &UserConfig{CollectionMethod: method})
	return b
}

func (b *userConfigBuilder) withInline(raw string) *userConfigBuilder {
	if raw == "" {
		return b
	}

	cfg, err := decodeUserConfig([]byte(raw))
	if err != nil {
		// Orchestration layers hand the document over base64 encoded to
		// survive shell quoting; fall back to that.
		decoded, decErr := base64.StdEncoding.DecodeString(raw)
		if decErr != nil {
			b.err = err
			return b
		}

		if cfg, err = decodeUserConfig(decoded); err != nil {
			b.err = err
			return b
		}
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *userConfigBuilder) withFile(path string) *userConfigBuilder {
	if path == "" {
		return b
	}

	data, err := os.ReadFile(path)
	if err != nil {
		b.err = fmt.Errorf("error reading configuration file: %w", err)
		return b
	}

	cfg, err := decodeUserConfig(data)
	if err != nil {
		b.err = err
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func decodeUserConfig(data []byte) (*UserConfig, error) {
	var cfg UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding user configuration: %w", err)
	}

	return &cfg, nil
}
