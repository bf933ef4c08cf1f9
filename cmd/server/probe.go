package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"news-portal-backend/internal/api/routes"
	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/config"
	"news-portal-backend/internal/logger"
)

var flagOutput string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run one live health check against the upstream news API",
	Long: `Log in to the upstream API, fetch the listing once and print the resulting health snapshot.

The snapshot is computed against a private in-memory cache so nothing is shared with a running server.
Exits non-zero when the upstream is unhealthy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Init(cfg.LogLevel, cfg.LogFormat)
		logger.Logger().SetOutput(os.Stderr)

		cacheConfig := cfg.CacheConfig()
		store := cache.NewInMemoryCache(cacheConfig.DefaultTTL, cacheConfig.CleanupInterval)
		svc, err := routes.BuildServices(cfg, store)
		if err != nil {
			return fmt.Errorf("wiring services: %w", err)
		}

		status := svc.Health.GetStatus(cmd.Context())
		if err := writeStatus(cmd.OutOrStdout(), status, flagOutput); err != nil {
			return err
		}
		if !status.IsHealthy {
			cmd.SilenceUsage = true
			return fmt.Errorf("upstream API is unhealthy")
		}
		return nil
	},
}

func init() {
	probeCmd.Flags().StringVarP(&flagOutput, "output", "o", "json", "output format (json or yaml)")
}

// writeStatus renders v as indented JSON or as YAML with the same field names
func writeStatus(w io.Writer, v interface{}, format string) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding status: %w", err)
	}

	switch strings.ToLower(format) {
	case "json":
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case "yaml", "yml":
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return fmt.Errorf("decoding status: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(fields)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
