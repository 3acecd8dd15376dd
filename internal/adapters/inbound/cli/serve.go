package cli

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandguard/brandguard/internal/adapters/inbound/httpapi"
	"github.com/brandguard/brandguard/internal/adapters/outbound/fixture"
	"github.com/brandguard/brandguard/internal/adapters/outbound/metrics"
	"github.com/brandguard/brandguard/internal/adapters/outbound/probe"
	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain/engine"
	"github.com/brandguard/brandguard/internal/domain/rules"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		projectPath string
		addr        string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve health, metrics and single-asset validation over HTTP",
		Long: "Start the HTTP service: /health, /health/live, /health/ready, /metrics and POST /v1/validate. " +
			"Dependencies listed in service.dependencies or BRANDGUARD_HTTP_DEPENDENCIES are probed on every health check.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			_, cfg, err := loadConfig(projectPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Service.Addr = addr
			}

			eng := engine.New(nil)
			recorder := metrics.New(rules.Triggers(eng.Rules())...)
			checker := application.NewHealthChecker(cfg.Service, logger)
			checker.SetObserver(recorder)
			names := probe.RegisterHTTP(checker, &http.Client{}, cfg.Service.Dependencies)
			logger.Info("registered dependency probes", "dependencies", names)

			validator := application.NewValidateService(eng, fixture.New(), recorder, logger)
			srv := httpapi.New(checker, validator, recorder.Handler(), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Serve(ctx, cfg.Service.Addr)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .brandguard.yaml")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides BRANDGUARD_ADDR)")
	return cmd
}
