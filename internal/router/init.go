package router

import (
	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/container"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/archive"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/backend"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/progress"
	handlers "github.com/rafikey/rafikey-admin/internal/interface/http"
	"github.com/rafikey/rafikey-admin/internal/router/modules"
)

type ContentModuleDeps struct {
	Admins    *handlers.AdminHandler
	Clinics   *handlers.ClinicHandler
	Quizzes   *handlers.QuizHandler
	Resources *handlers.ResourceHandler
}

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()
	svc := application.NewAuthService(backend.NewAdminGateway(container.GetBotClient()), container.GetLogger())
	return handlers.NewAuthHandler(svc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)
}

func buildDashboardHandler() (*handlers.DashboardHandler, error) {
	catalog, err := application.LoadCatalog()
	if err != nil {
		return nil, err
	}
	metrics := application.NewMetricsService(
		backend.NewMetricsGateway(container.GetCoreClient(), container.GetBotClient()),
		container.GetLogger(),
	)
	return handlers.NewDashboardHandler(metrics, catalog, container.GetLogger()), nil
}

// progressStore prefers Redis so progress survives across instances.
func progressStore() repo.ProgressRepository {
	ttl := container.GetConfig().UploadProgressTTL
	if rdb := container.GetRedis(); rdb != nil {
		return progress.NewRedisStore(rdb, ttl)
	}
	return progress.NewMemoryStore(ttl)
}

func archiveStore() repo.ArchiveRepository {
	cfg := container.GetConfig()
	if container.GetGCS() == nil || cfg.GCSBucket == "" {
		return nil
	}
	return archive.NewGCSArchive(container.GetGCS(), cfg.GCSBucket)
}

func buildContentDeps() ContentModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	core, bot := container.GetCoreClient(), container.GetBotClient()

	docs := application.NewDocumentService(
		backend.NewDocumentGateway(container.GetUploadClient()),
		progressStore(),
		archiveStore(),
		cfg.MaxUploadBytes,
		logger,
	)
	return ContentModuleDeps{
		Admins:    handlers.NewAdminHandler(application.NewAdminService(backend.NewAdminGateway(bot), logger), logger),
		Clinics:   handlers.NewClinicHandler(application.NewClinicService(backend.NewClinicGateway(core), logger), logger),
		Quizzes:   handlers.NewQuizHandler(application.NewQuizService(backend.NewQuizGateway(bot), logger), logger),
		Resources: handlers.NewResourceHandler(docs, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) error {
	cfg := container.GetConfig()

	dash, err := buildDashboardHandler()
	if err != nil {
		return err
	}
	proxy, err := handlers.NewProxyHandler(cfg.BackendAPIURL, container.GetLogger())
	if err != nil {
		return err
	}
	content := buildContentDeps()

	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewDashboardModule(dash))
	r.Add(modules.NewAdminModule(content.Admins))
	r.Add(modules.NewClinicModule(content.Clinics))
	r.Add(modules.NewQuizModule(content.Quizzes))
	r.Add(modules.NewResourceModule(content.Resources))
	r.Add(modules.NewProxyModule(proxy, cfg.CORSOrigins()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
