package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-randomstring/randomstring/internal/daemon"
	"github.com/go-randomstring/randomstring/internal/logger"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the randomstring web service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			if v.GetBool("dev") {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				return err //nolint:wrapcheck
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to start daemon")

				return err //nolint:wrapcheck
			}

			log.Info().Int("port", cfg.Webserver.Port).Msg("starting web service")

			return d.Start()
		},
	}

	serveCmd.Flags().Bool("dev", false, "Enable dev mode")
	_ = v.BindPFlag("dev", serveCmd.Flags().Lookup("dev"))

	return serveCmd
}
