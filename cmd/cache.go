package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/internal/iocache"
	"github.com/threesixty-dev/threesixty/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by reporting commands. This avoids workbook
// source validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the parsed-response cache (improves performance)",
	Long: `Manage the response cache that speeds up repeated reports.

Threesixty caches parsed survey responses keyed on the workbook content so
re-running reports over the same workbook skips the xlsx parsing pass.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Run cache schema migrations

Examples:
  # Check cache status
  threesixty cache status

  # Clear cache after a workbook layout change
  threesixty cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached response data",
	Long: `Delete all cached response data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  threesixty cache clear

  # Clear MySQL cache (set connection string via env variable)
  THREESIXTY_CACHE_BACKEND=mysql THREESIXTY_CACHE_DB_CONNECT="..." threesixty cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the response cache.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  threesixty cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetResponseStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd runs cache schema migrations.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run cache schema migrations",
	Long: `Apply schema migrations to the response cache database.

By default migrates to the latest version. Use --target-version to migrate
to a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest schema
  threesixty cache migrate

  # Roll back all migrations
  threesixty cache migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations open their own connection, so skip store initialization.
		if err := loadConfigFile(); err != nil {
			return err
		}
		backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
		connStr := viper.GetString("cache-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			return err
		}
		cfg.CacheBackend = backend
		cfg.CacheDBConnect = connStr
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run cache migrations", err)
		}
	},
}
