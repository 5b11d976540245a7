package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"callcenter/aikeys"
	"callcenter/collections"
	"callcenter/commands"
	"callcenter/config"
	"callcenter/handlers"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	app := pocketbase.New()
	app.RootCmd.AddCommand(commands.NewQuoteCommand())

	store := profile.NewStore(storage.NewRecordSlot(app, cfg.ProfileSlot, logger), profile.WithLogger(logger))
	configs := services.NewServiceConfigStore(storage.NewRecordSlot(app, cfg.ServiceConfigSlot, logger), logger)
	registry := aikeys.NewRegistry(
		aikeys.NewOpenAI(storage.NewRecordSlot(app, cfg.OpenAIKeySlot, logger), aikeys.OpenAIConfig{
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.AITestTimeout,
		}, logger),
		aikeys.NewGemini(storage.NewRecordSlot(app, cfg.GeminiKeySlot, logger), aikeys.GeminiConfig{
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			Timeout: cfg.AITestTimeout,
		}, logger),
	)

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.SeedDemo {
			if err := collections.Seed(app); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
		}
		if err := collections.MigrateDefaultServiceConfig(app, cfg.ServiceConfigSlot, logger); err != nil {
			log.Printf("Warning: service config migration failed: %v", err)
		}
		store.Initialize()
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Snapshot the profile for the header and sidebar on every request
		se.Router.BindFunc(handlers.ProfileContextMiddleware(store, configs))

		// ── Public pages ─────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(store, configs))
		se.Router.GET("/pricing", handlers.HandlePricing(store, configs))
		se.Router.POST("/quote", handlers.HandleQuoteRequest(app, store, configs))

		// ── Plan builder ─────────────────────────────────────────
		se.Router.GET("/builder", handlers.HandleBuilder(store, configs))
		se.Router.POST("/builder/services", handlers.HandleBuilderServices(store, configs))
		se.Router.POST("/builder/assessment", handlers.HandleBuilderAssessment(store, configs))
		se.Router.POST("/checkout", handlers.HandleCheckout(store))

		// ── Quote export ─────────────────────────────────────────
		se.Router.GET("/quote/export/excel", handlers.HandleQuoteExportExcel(store))
		se.Router.GET("/quote/export/pdf", handlers.HandleQuoteExportPDF(store))

		// ── Profile ──────────────────────────────────────────────
		se.Router.POST("/profile/reset", handlers.HandleProfileReset(store))
		se.Router.GET("/profile/export", handlers.HandleProfileExport(store))

		// ── Client dashboard ─────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(store, configs))
		se.Router.POST("/dashboard/tickets", handlers.HandleTicketCreate(store, configs))
		se.Router.POST("/dashboard/business", handlers.HandleBusinessDetailsSave(store, configs))
		se.Router.POST("/dashboard/overview", handlers.HandleCompanyOverviewSave(store, configs))
		se.Router.GET("/dashboard/team", handlers.HandleTeam(store, configs))

		// ── Admin ────────────────────────────────────────────────
		se.Router.GET("/admin/services", handlers.HandleAdminServices(store, configs))
		se.Router.POST("/admin/services", handlers.HandleAdminServicesSave(store, configs))
		se.Router.GET("/admin/ai", handlers.HandleAdminAI(registry, store, configs))
		se.Router.POST("/admin/ai/{provider}/key", handlers.HandleAIKeySave(registry))
		se.Router.POST("/admin/ai/{provider}/test", handlers.HandleAIKeyTest(registry, cfg.AITestTimeout))
		se.Router.POST("/admin/ai/{provider}/chat", handlers.HandleAIChat(registry, cfg.AITestTimeout))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
