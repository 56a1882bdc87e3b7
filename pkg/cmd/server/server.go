package server

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/swg-tools/sginfo/pkg/server"
)

func NewCmd() *cobra.Command {
	options := struct {
		listen string
	}{
		listen: "127.0.0.1:5515",
	}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "serve the sysinfo parser over http",
		Example: heredoc.Doc(`
		$ sginfo server
		$ sginfo server --listen 0.0.0.0:5515
		`),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			e := echo.New()
			e.HideBanner = true
			e.Use(middleware.Recover())

			e.POST("/parse", server.Parse())
			e.GET("/health", server.Health())

			slog.Info("Start server", "listen", options.listen)
			if err := e.Start(options.listen); err != nil {
				return errors.Wrap(err, "start server")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.listen, "listen", "l", options.listen, "listen address")

	return cmd
}
