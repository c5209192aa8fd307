package main

import (
	"context"

	"frontsession/internal/behavior"
	"frontsession/internal/blog"
	"frontsession/internal/config"
	"frontsession/internal/db"
	"frontsession/internal/frontendsession"
	"frontsession/internal/handlers"
	"frontsession/internal/middleware"
	"frontsession/internal/router"
	"frontsession/internal/settings"
	"frontsession/internal/widgets"
	"frontsession/pkg/logger"
	"frontsession/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Env)

	// Initialize Database
	gdb := db.Init(cfg.DatabaseURL, cfg.AdminPassword, log)

	store, err := settings.NewStore(gdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create settings store")
	}
	ctx := context.Background()
	seeds := map[string]settings.Map{
		blog.SystemNamespace: {
			blog.SettingTheme:         "berlin",
			blog.SettingLang:          "en",
			blog.SettingAllowComments: "1",
			blog.SettingCommentsTTL:   "0",
			blog.SettingCommentsPub:   "1",
		},
		frontendsession.ID: frontendsession.Defaults,
		"widgets": {
			frontendsession.ID + "." + frontendsession.SettingShow: frontendsession.ShowAll,
		},
	}
	for ns, defaults := range seeds {
		if err := store.Seed(ctx, ns, defaults); err != nil {
			log.Fatal().Err(err).Str("namespace", ns).Msg("Failed to seed settings")
		}
	}
	system := store.Namespace(blog.SystemNamespace)

	// Host services
	behaviors := behavior.NewStack()
	urls := blog.NewURLs()
	posts := blog.NewPosts(gdb, behaviors)
	comments := blog.NewComments(gdb, behaviors)
	users := blog.NewUsers(gdb)

	// Plugin
	registry := prometheus.NewRegistry()
	plugin := frontendsession.New(
		store.Namespace(frontendsession.ID),
		behaviors,
		posts,
		blog.DefaultThemes,
		frontendsession.NewMetrics(registry),
	)
	plugin.Register(urls)

	widgetStack := widgets.NewStack()
	initCtx := blog.WithContext(ctx, &blog.Context{BlogID: cfg.BlogID, BlogURL: cfg.SiteURL, Settings: system, URLs: urls})
	if err := behaviors.Call(initCtx, behavior.InitWidgets, widgetStack); err != nil {
		log.Fatal().Err(err).Msg("Failed to init widgets")
	}

	site := &handlers.Site{
		Behaviors:    behaviors,
		Widgets:      widgetStack,
		WidgetConfig: store.Namespace("widgets"),
		Log:          log,
	}

	// Initialize Gin
	if cfg.Log.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Setup Sessions
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{Path: "/", HttpOnly: true})
	r.Use(sessions.Sessions("frontsession", sessionStore))

	r.HTMLRender = web.Renderer(map[string]string{
		frontendsession.PageTemplate: frontendsession.PageView,
	})
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser(users))
	r.Use(middleware.Frontend(cfg.BlogID, cfg.SiteURL, system, urls))

	router.RegisterRoutes(r, router.Deps{
		Site:     site,
		Posts:    posts,
		Comments: comments,
		Session:  frontendsession.NewHandler(plugin, users, site.Render, cfg.RememberFor),
		Metrics:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	log.Info().Str("port", cfg.Port).Msg("Frontsession server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
