package router

import (
	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/internal/container"
	pginfra "github.com/westernstar/blog/internal/infrastructure/postgres"
	"github.com/westernstar/blog/internal/infrastructure/redisstore"
	handlers "github.com/westernstar/blog/internal/interface/http"
	"github.com/westernstar/blog/internal/interface/middleware"
	"github.com/westernstar/blog/internal/router/modules"
)

// InitModules wires all application modules from the container
// singletons and registers them with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	posts := pginfra.NewPostRepository(container.GetPGPool())
	comments := pginfra.NewCommentRepository(container.GetPGPool())
	sessions := redisstore.NewSessionStore(container.GetRedis())

	authSvc := application.NewAuthService(users, sessions, container.GetTokens(), cfg.SessionTTL, logger)
	blogSvc := application.NewBlogService(posts, comments, logger, container.GetES(), cfg.ESPostsIndex)
	contactSvc := application.NewContactService(container.GetMailSender(), cfg.ContactTo, cfg.ContactSubject, cfg.MailSendEnabled, logger)

	// Identity resolution runs for every route; guards are per-route.
	r.Use(middleware.Session(authSvc))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)))
	r.Add(modules.NewBlogModule(handlers.NewBlogHandler(blogSvc, logger, container.GetGCS(), cfg.GCSBucket)))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), handlers.NewPageHandler()))
}
