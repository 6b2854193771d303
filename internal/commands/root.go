package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/aitbekovm/grind/internal/api"
	"github.com/aitbekovm/grind/internal/calendar"
	"github.com/aitbekovm/grind/internal/config"
	"github.com/aitbekovm/grind/internal/db"
	"github.com/aitbekovm/grind/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "grind",
	Short: "A CLI client for your study dashboard",
	Long: `grind is a command-line client for the study-dashboard backend.
Manage assignments per class, track their status and priority, and mirror
deadlines into your calendar as reminders.`,
}

// App bundles everything a command needs: the one auth context from
// config, the API client built from it, the task store, and the
// calendar synchronizer. Constructed once per invocation, no globals.
type App struct {
	Config *config.Config
	Client *api.Client
	Store  *store.TaskStore
	Sync   *calendar.Synchronizer
	Cache  *db.Cache
}

// newApp loads config and wires the client, store and synchronizer.
func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Session)

	var cache *db.Cache
	if cfg.Cache.Enabled {
		cache, err = db.Open()
		if err != nil {
			// A broken cache never blocks the client; fall back to no snapshots.
			log.Printf("warning: offline cache disabled: %v", err)
			cache = nil
		}
	}

	var snap store.Snapshotter
	if cache != nil {
		snap = cache
	}

	return &App{
		Config: cfg,
		Client: client,
		Store:  store.NewTaskStore(client, snap),
		Sync:   calendar.NewSynchronizer(client),
		Cache:  cache,
	}, nil
}

// withApp wraps a command function to build the app first.
func withApp(fn func(*App, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer func() {
			if app.Cache != nil {
				app.Cache.Close()
			}
		}()
		fn(app, cmd, args)
	}
}

// reportError prints a task-operation failure with re-auth guidance on 401.
func reportError(err error) {
	if api.IsAuthRequired(err) {
		fmt.Println("🔒 Session expired. Log in to the dashboard and update your session token (see 'grind init').")
		return
	}
	fmt.Printf("Error: %v\n", err)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grind %s (commit %s, built %s)\n", version, commit, date)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.Path()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Wrote default config to %s\n", path)
		fmt.Println("Set api.base_url and your session token, then run 'grind ls'.")
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
