package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"json-diff/core/loader"
	"json-diff/core/logger"
	"json-diff/core/middleware/auth"
	"json-diff/core/middleware/rayid"
	"json-diff/feature/diff"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "json-diff/docs/swagger"
)

// @title json-diff API
// @version 1.0
// @description Compares JSON tables matched on an identifier field.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP server exposing the comparison endpoints over the configured source.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()
		logg := e.logger
		zap.ReplaceGlobals(logg)

		app := newApp(e)

		go func() {
			logg.Info("Starting server",
				zap.String("port", e.cfg.Server.Port),
				zap.String("source", e.source.Kind()),
			)
			if err := app.Listen(e.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp builds the Fiber application with middleware and features.
func newApp(e *env) *fiber.App {
	logg := e.logger
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             e.cfg.Server.BodyLimit(),
	})

	// Ray IDs first so every later log line carries one.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{
		ApiKey: e.cfg.Server.ApiKey,
		Next:   func(c *fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/swagger") },
	}))

	mgr := loader.NewManager(logg)
	mgr.Register(diff.NewFeature(e.source, logg))
	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
