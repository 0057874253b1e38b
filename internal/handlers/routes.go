package handlers

import (
	"net/http"

	authmw "github.com/dimitrije/intervue-api/internal/middleware"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

type RouteConfig struct {
	Webhook    *WebhookHandler
	Comments   *CommentHandler
	Users      *UserHandler
	SSE        *SSEHandler
	Tokens     authmw.TokenValidator
	Production bool
}

// NewRouter builds the full route table.
func NewRouter(rc RouteConfig) http.Handler {
	app := drift.New()

	if rc.Production {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))

	// Signature verification needs the untouched body, so this sits outside the body parser.
	app.Post("/clerk-webhook", rc.Webhook.HandleClerk)

	api := app.Group("/api/v1")
	api.Use(middleware.BodyParser())

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	api.Get("/interviews/:interviewId/comments", rc.Comments.List)
	api.Get("/users/:externalId", rc.Users.GetByExternalID)

	optional := api.Group("")
	optional.Use(authmw.OptionalAuth(rc.Tokens))

	optional.Post("/interviews/:interviewId/comments", rc.Comments.Create)
	optional.Get("/interviews/:interviewId/events", rc.SSE.Connect)
	optional.Get("/me/role", rc.Users.GetMyRole)

	protected := api.Group("")
	protected.Use(authmw.Auth(rc.Tokens))

	protected.Post("/sse/:clientId/subscribe/:interviewId", rc.SSE.Subscribe)
	protected.Post("/sse/:clientId/unsubscribe/:interviewId", rc.SSE.Unsubscribe)

	return app
}
