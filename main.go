package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/collections"
	"quoteadmin/config"
	"quoteadmin/handlers"
)

func main() {
	app := pocketbase.New()
	cfg := config.MustLoad()
	sessions := handlers.NewSessionStore()

	// Create collections, seed data and migrate legacy records on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app, cfg.Pricing); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyTotals(app, cfg.Pricing); err != nil {
			log.Printf("Warning: legacy totals migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Everything below the login page requires a session
		se.Router.BindFunc(handlers.RequireSession(sessions))

		// ── Auth ────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage(sessions))
		se.Router.POST("/login", handlers.HandleLogin(sessions, cfg.AdminPassword))
		se.Router.POST("/logout", handlers.HandleLogout(sessions))

		// ── Quote CRUD ──────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/quotes/new", handlers.HandleQuoteCreate(cfg.Pricing))
		se.Router.POST("/quotes", handlers.HandleQuoteSave(app, cfg.Pricing))
		se.Router.GET("/quotes/{id}/edit", handlers.HandleQuoteEdit(app, cfg.Pricing))
		se.Router.POST("/quotes/{id}/save", handlers.HandleQuoteUpdate(app, cfg.Pricing))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Exports (list routes before /quotes/{id}/*) ─────────
		se.Router.GET("/quotes/export/csv", handlers.HandleQuotesExportCSV(app))
		se.Router.GET("/quotes/export/excel", handlers.HandleQuotesExportExcel(app))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app, cfg.Pricing))

		// Redirect home to the quotes list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
