package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/djcass44/debdeps/cmd/cache"
	"github.com/djcass44/debdeps/internal/output"
	v1 "github.com/djcass44/debdeps/pkg/api/v1"
	"github.com/djcass44/debdeps/pkg/debian"
	"github.com/djcass44/debdeps/pkg/downloader"
	"github.com/djcass44/debdeps/pkg/mockrepo"
	"github.com/djcass44/debdeps/pkg/report"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "print the direct dependencies of a package",
	RunE:  deps,
}

const (
	flagFilter   = "filter"
	flagReport   = "report"
	flagCache    = "cache"
	flagCacheDir = "cache-dir"
)

var errMockRemote = errors.New("mock mode requires a local repository file")

func init() {
	depsCmd.Flags().StringP(flagConfig, "c", defaultConfigPath, "path to a configuration file")
	depsCmd.Flags().String(flagFilter, "", "only print dependencies containing this text (overrides filter_substring)")
	depsCmd.Flags().String(flagReport, "", "path to write a json report of the lookup")
	depsCmd.Flags().Bool(flagCache, false, "cache remote files in the default cache directory")
	depsCmd.Flags().String(flagCacheDir, "", "cache remote files in this directory (overrides cache_dir)")

	_ = depsCmd.MarkFlagFilename(flagConfig, ".json", ".yaml", ".yml")
	_ = depsCmd.MarkFlagDirname(flagCacheDir)
}

func deps(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logr.FromContextOrDiscard(ctx)

	configPath, _ := cmd.Flags().GetString(flagConfig)
	reportPath, _ := cmd.Flags().GetString(flagReport)

	// read the config file
	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	if cmd.Flags().Changed(flagFilter) {
		filter, _ := cmd.Flags().GetString(flagFilter)
		cfg.FilterSubstring = &filter
	}
	if cmd.Flags().Changed(flagCacheDir) {
		cfg.CacheDir, _ = cmd.Flags().GetString(flagCacheDir)
	}
	if useCache, _ := cmd.Flags().GetBool(flagCache); useCache && cfg.CacheDir == "" {
		cfg.CacheDir = cache.Dir("")
	}
	log.V(1).Info("loaded configuration", "pkg", cfg.PackageName, "repo", cfg.Repository(), "mode", cfg.Mode)

	content, err := load(ctx, cfg)
	if err != nil {
		return err
	}

	names, err := debian.Dependencies(ctx, content, cfg.PackageName)
	if err != nil {
		return err
	}
	names = debian.Filter(names, cfg.Filter())
	log.V(1).Info("resolved dependencies", "count", len(names))

	if cfg.Tree() {
		err = output.Tree(cmd.OutOrStdout(), cfg.PackageName, names)
	} else {
		err = output.List(cmd.OutOrStdout(), names)
	}
	if err != nil {
		return err
	}

	if reportPath != "" {
		return report.New(cfg.PackageName, cfg.Repository(), content, cfg.Filter(), names).Write(ctx, reportPath)
	}
	return nil
}

// load returns the control file content described
// by the configuration.
func load(ctx context.Context, cfg v1.Config) (string, error) {
	loc := cfg.Location()
	if cfg.Mode == v1.ModeMock {
		path, ok := loc.(debian.LocalPath)
		if !ok {
			return "", errMockRemote
		}
		return mockrepo.Read(ctx, string(path))
	}

	var opts []debian.LoaderOption
	if cfg.CacheDir != "" {
		dl, err := downloader.NewDownloader(cfg.CacheDir)
		if err != nil {
			return "", fmt.Errorf("preparing cache dir: %w", err)
		}
		opts = append(opts, debian.WithDownloader(dl))
	}
	return debian.NewLoader(opts...).Load(ctx, loc)
}
