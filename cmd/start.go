package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"product-alternatives/core/config"
	"product-alternatives/core/loader"
	"product-alternatives/core/logger"
	"product-alternatives/core/middleware/auth"
	"product-alternatives/core/middleware/rayid"
	coreref "product-alternatives/core/reference"
	"product-alternatives/core/storage"

	"product-alternatives/feature/alternatives"
	"product-alternatives/feature/reference"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "product-alternatives/docs/swagger"
)

// @title Product Alternatives API
// @version 1.0
// @description Finds alternative products in the reference inventory for an uploaded list of products.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the alternatives server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Reference Inventory
		fetcher, store, err := openReference(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize reference source", zap.Error(err))
		}
		logg.Info("Reference source ready",
			zap.String("kind", cfg.Reference.Kind),
			zap.Duration("timeout", cfg.Reference.Timeout()))

		// The template may live in the bucket even when the inventory does not
		switch {
		case !cfg.Server.HasTemplate():
			logg.Info("No upload template configured, template download disabled")
		case store == nil && cfg.Server.TemplateObject != "":
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Storage unavailable, template download disabled", zap.Error(err))
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(alternatives.NewFeature(fetcher, store, cfg.Storage.Bucket, cfg.Server, logg))
		mgr.Register(reference.NewFeature(fetcher, store, cfg.Storage.Bucket, bucketObjects(cfg), logg))

		// Middleware Registration
		// RayID must be first to trace everything
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// bucketObjects lists the objects the service reads from the bucket.
func bucketObjects(cfg *config.Config) []string {
	var objects []string
	if cfg.Reference.Kind == coreref.KindStorage {
		objects = append(objects, cfg.Reference.Object)
	}
	if cfg.Server.TemplateObject != "" {
		objects = append(objects, cfg.Server.TemplateObject)
	}
	return objects
}

func init() {
	RootCmd.AddCommand(startCmd)
}
