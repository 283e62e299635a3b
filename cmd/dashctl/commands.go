package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"approvaldash/internal/approval/store"
	"approvaldash/internal/dashboard"
	jwttoken "approvaldash/internal/jwt_token"
	"approvaldash/internal/platform/config"
	"approvaldash/internal/platform/logger"
	id "approvaldash/pkg/domain"
)

type rootOptions struct {
	configPath string
	userID     int64
	at         string
	verbose    bool
}

func (o *rootOptions) user() (id.UserID, error) {
	user := id.UserID(o.userID)
	if user.IsNil() {
		return 0, fmt.Errorf("%w: --user must be positive", id.ErrInvalidID)
	}
	return user, nil
}

// builderFunc runs one dashboard view for the selected user.
type builderFunc func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error)

// NewRootCommand creates the dashctl command tree. lookup supplies the
// environment overrides applied on top of the config file.
func NewRootCommand(lookup func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Run approval dashboard views from the command line",
		Long:          `dashctl computes any dashboard view against the configured approval store and prints it as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	root.PersistentFlags().Int64Var(&opts.userID, "user", 1, "User id the views are computed for")
	root.PersistentFlags().StringVar(&opts.at, "at", "", "Evaluate as of this RFC 3339 instant instead of now")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine activity to stderr")

	var activityLimit, trendDays, todoLimit int
	views := []struct {
		use, short string
		flags      func(*cobra.Command)
		run        builderFunc
	}{
		{"statistics", "Pending and this month's approval counts", nil,
			func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error) {
				return svc.Statistics(ctx, user)
			}},
		{"activities", "Recent activity feed", func(c *cobra.Command) {
			c.Flags().IntVar(&activityLimit, "limit", dashboard.DefaultActivityLimit, "Number of entries")
		}, func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error) {
			return svc.RecentActivities(ctx, user, activityLimit)
		}},
		{"trend", "Daily submission trend", func(c *cobra.Command) {
			c.Flags().IntVar(&trendDays, "days", dashboard.DefaultTrendDays, "Window length in days")
		}, func(ctx context.Context, svc *dashboard.Service, _ id.UserID) (any, error) {
			return svc.Trend(ctx, trendDays)
		}},
		{"distribution", "Share of records per approval type", nil,
			func(ctx context.Context, svc *dashboard.Service, _ id.UserID) (any, error) {
				return svc.TypeDistribution(ctx)
			}},
		{"efficiency", "Processing time and approval rate", nil,
			func(ctx context.Context, svc *dashboard.Service, _ id.UserID) (any, error) {
				return svc.Efficiency(ctx)
			}},
		{"todos", "Open approval nodes awaiting the user", func(c *cobra.Command) {
			c.Flags().IntVar(&todoLimit, "limit", dashboard.DefaultTodoLimit, "Number of entries")
		}, func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error) {
			return svc.Todos(ctx, user, todoLimit)
		}},
		{"breakdown", "Average processing hours per approval type", nil,
			func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error) {
				return svc.TypeEfficiency(ctx, user)
			}},
		{"heatmap", "Daily submissions over the past year", nil,
			func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error) {
				return svc.Heatmap(ctx, user)
			}},
		{"overview", "Every view in one document", nil,
			func(ctx context.Context, svc *dashboard.Service, user id.UserID) (any, error) {
				return svc.Overview(ctx, user)
			}},
	}
	for _, v := range views {
		cmd := &cobra.Command{
			Use:   v.use,
			Short: v.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runView(cmd, opts, lookup, v.run)
			},
		}
		if v.flags != nil {
			v.flags(cmd)
		}
		root.AddCommand(cmd)
	}

	root.AddCommand(newTokenCommand(opts, lookup))
	return root
}

func newTokenCommand(opts *rootOptions, lookup func(string) (string, bool)) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token for --user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts, lookup)
			if err != nil {
				return err
			}
			user, err := opts.user()
			if err != nil {
				return err
			}
			tok, err := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer).GenerateAccessToken(user, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

func loadConfig(opts *rootOptions, lookup func(string) (string, bool)) (config.Config, error) {
	cfg, err := config.Load(opts.configPath, config.Default())
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runView(cmd *cobra.Command, opts *rootOptions, lookup func(string) (string, bool), run builderFunc) error {
	cfg, err := loadConfig(opts, lookup)
	if err != nil {
		return err
	}
	user, err := opts.user()
	if err != nil {
		return err
	}
	now := time.Now()
	if opts.at != "" {
		now, err = time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}
	loc, err := cfg.Dashboard.Location()
	if err != nil {
		return err
	}

	log := slog.New(slog.DiscardHandler)
	if opts.verbose {
		level, _ := cfg.Log.SlogLevel()
		log = logger.NewWithWriter(cmd.ErrOrStderr(), level)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	approvals, closeStore, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Migrate, now, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	svc, err := dashboard.NewFromStore(approvals,
		dashboard.WithLogger(log),
		dashboard.WithClock(func() time.Time { return now }),
		dashboard.WithLocation(loc),
		dashboard.WithDenseHeatmap(cfg.Dashboard.DenseHeatmap),
	)
	if err != nil {
		return err
	}

	result, err := run(ctx, svc, user)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
