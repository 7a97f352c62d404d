package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/gin-gonic/gin"

	"georeport/assets"
	"georeport/config"
	"georeport/handlers"
	"georeport/layout"
	"georeport/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	log.SetHandler(text.Default)
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	store := report.NewStore()
	rend, err := layout.NewRenderer(layout.Options{
		Scale:    cfg.RasterScale,
		AssetDir: cfg.AssetDir,
	})
	if err != nil {
		log.WithError(err).Fatal("renderer init failed")
	}
	loader := assets.Loader{Dir: cfg.AssetDir}
	export := handlers.NewExportHandler(store, rend, loader)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger())

	r.GET("/healthz", handlers.Health)
	r.Static("/static", cfg.StaticDir)

	session := r.Group("/", handlers.SessionMiddleware(store))
	session.GET("/report", handlers.GetReport(store))
	session.PUT("/report", handlers.PutReport(store))
	session.POST("/report/export/:format", export.Export)

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
