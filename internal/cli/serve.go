package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ikreport/pkg/cache"
	"github.com/matzehuels/ikreport/pkg/pipeline"
	"github.com/matzehuels/ikreport/pkg/server"
)

// redisPrefix scopes server keys when Redis is shared with other services.
const redisPrefix = appName + ":"

type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	noCache       bool
	timeout       time.Duration
	maxBody       int64
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports and graphs over HTTP",
		Long: `Serve the report and graph API.

  POST /v1/reports/{solution|fk}   bundle JSON in, LaTeX out
  POST /v1/graphs/{dot|svg|png}    bundle JSON in, solution graph out
  GET  /healthz

Results are cached in Redis when --redis (or [redis] addr in the config) is
set, otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ch, keyer, err := c.serverCache(cmd, opts)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(ch, keyer, c.Logger)
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Config{
				MaxBodyBytes: opts.maxBody,
				Timeout:      opts.timeout,
			})
			printInfo("Listening on %s", StyleValue.Render(opts.addr))
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the shared cache")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "per-request timeout")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body in bytes")

	return cmd
}

// serverCache picks Redis when an address is configured and the file cache
// otherwise. Redis keys are scoped with the app name.
func (c *CLI) serverCache(cmd *cobra.Command, opts serveOpts) (cache.Cache, cache.Keyer, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil, nil
	}

	rc := c.config().Redis
	if cmd.Flags().Changed("redis") {
		rc.Addr = opts.redisAddr
	}
	if cmd.Flags().Changed("redis-password") {
		rc.Password = opts.redisPassword
	}
	if cmd.Flags().Changed("redis-db") {
		rc.DB = opts.redisDB
	}
	if rc.Addr == "" {
		ch, err := newCache(false)
		return ch, nil, err
	}

	rcache, err := cache.NewRedisCache(cmd.Context(), cache.RedisConfig{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("redis %s: %w", rc.Addr, err)
	}
	c.Logger.Info("Using Redis cache", "addr", rc.Addr, "db", rc.DB)
	return rcache, cache.NewScopedKeyer(nil, redisPrefix), nil
}
