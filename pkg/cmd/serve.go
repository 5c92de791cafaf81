package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

var (
	ServeCmd = &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		RunE:  serveCmdFunc(),
	}
)

func init() {
	ServeCmd.Flags().String(config.KeyAddress, ":8080", "HTTP listen address")
	ServeCmd.Flags().Duration(config.KeyContactDelay, 1500*time.Millisecond, "simulated contact submission delay")
	ServeCmd.Flags().StringSlice(config.KeyCORSOrigins, []string{"*"}, "origins allowed to call the JSON API")
	ServeCmd.Flags().Int(config.KeyFeatured, 3, "number of cars featured on the home page")
}

func serveCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		log := cfg.Logger()

		catalog, err := cfg.Catalog()
		if err != nil {
			return err
		}

		serve, err := server.NewHTTPServer(cfg, catalog, log)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("address", cfg.Address).Int("cars", catalog.Len()).Msg("Started serve cmd")
			if err := serve.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			log.Error().Err(err).Msg("Shutting down the server")
			return err
		case sig := <-signalCh:
			log.Info().Str("signal", sig.String()).Msg("Shutdown the server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return serve.Shutdown(ctx)
	}
}
