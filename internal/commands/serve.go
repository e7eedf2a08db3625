package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiator/tenant-management-applications/internal/config"
	"github.com/javiator/tenant-management-applications/internal/migrate"
	"github.com/javiator/tenant-management-applications/internal/server"
	"github.com/javiator/tenant-management-applications/internal/service"
)

// ServeCmd runs pending migrations and starts the HTTP API.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the tenant management API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			st, err := openStore(cfg)
			if err != nil {
				return err
			}

			if err := migrate.New(st.DB()).Up(); err != nil {
				return err
			}

			svc := server.Services{
				Properties:   service.NewProperties(st),
				Tenants:      service.NewTenants(st),
				Transactions: service.NewTransactions(st),
				Reports:      service.NewReports(st),
				Backups:      service.NewBackups(st, cfg.BackupDir),
			}
			app := server.New(cfg, svc, log)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-quit
				log.Info("shutting down")
				_ = app.Shutdown()
			}()

			log.Info("starting server", zap.String("port", cfg.Port))
			return app.Listen(":" + cfg.Port)
		},
	}
}
