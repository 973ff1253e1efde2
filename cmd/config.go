package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	v1 "github.com/djcass44/debdeps/pkg/api/v1"
	"github.com/djcass44/debdeps/pkg/debian"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/yaml"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "validate and print the configuration",
	RunE:  printConfig,
}

const (
	flagConfig = "config"

	defaultConfigPath = "config.json"
)

func init() {
	configCmd.Flags().StringP(flagConfig, "c", defaultConfigPath, "path to a configuration file")

	_ = configCmd.MarkFlagFilename(flagConfig, ".json", ".yaml", ".yml")
}

func printConfig(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)

	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	return writeConfig(cmd.OutOrStdout(), cfg)
}

func writeConfig(w io.Writer, cfg v1.Config) error {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "package_name = %s\n", cfg.PackageName)
	_, _ = fmt.Fprintf(&sb, "repository_path = %s\n", cfg.RepositoryPath)
	_, _ = fmt.Fprintf(&sb, "mode = %s\n", cfg.Mode)
	_, _ = fmt.Fprintf(&sb, "ascii_tree = %t\n", cfg.Tree())
	if cfg.FilterSubstring != nil {
		_, _ = fmt.Fprintf(&sb, "filter_substring = %s\n", cfg.Filter())
	}
	if cfg.CacheDir != "" {
		_, _ = fmt.Fprintf(&sb, "cache_dir = %s\n", cfg.CacheDir)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func readConfig(s string) (v1.Config, error) {
	f, err := os.Open(filepath.Clean(s))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v1.Config{}, &debian.NotFoundError{Kind: debian.KindFile, Name: s}
		}
		return v1.Config{}, err
	}
	defer f.Close()

	var config v1.Config
	if err := yaml.NewYAMLOrJSONDecoder(f, 4).Decode(&config); err != nil {
		return v1.Config{}, fmt.Errorf("parsing config '%s': %w", s, err)
	}
	return config, nil
}
