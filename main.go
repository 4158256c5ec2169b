package main

import (
	"net/http"
	"os"

	"newsroom-cms/config"
	"newsroom-cms/handlers"
	"newsroom-cms/helper"
	"newsroom-cms/logger"
	"newsroom-cms/repositories"
	"newsroom-cms/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, dotenv, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", err)
		os.Exit(1)
	}
	logger.Init(cfg.Env, cfg.LogLevel)
	if !dotenv {
		logger.Debug("No .env file found")
	}
	if !cfg.IsDevelopment() && cfg.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET is the built-in default", map[string]interface{}{"env": cfg.Env})
	}

	windows, err := services.ParseReadingWindows(cfg.MorningStart, cfg.MiddayStart, cfg.MiddayEnd, cfg.EveningStart)
	if err != nil {
		logger.Error("Invalid front page reading windows", err)
		os.Exit(1)
	}
	location, err := cfg.Location()
	if err != nil {
		logger.Error("Invalid front page timezone", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", err)
		os.Exit(1)
	}
	if err := repositories.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", err)
		os.Exit(1)
	}

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	sectionRepo := repositories.NewSectionRepository(db)
	personRepo := repositories.NewPersonRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	imageRepo := repositories.NewImageRepository(db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, sectionRepo, personRepo, tagRepo, imageRepo)
	frontpageService := services.NewFrontpageService(articleRepo, sectionRepo, tagRepo, services.FrontpageOptions{
		Windows:  windows,
		Location: location,
	})
	sectionService := services.NewSectionService(sectionRepo)
	personService := services.NewPersonService(personRepo)
	tagService := services.NewTagService(tagRepo)
	imageService := services.NewImageService(imageRepo, cfg.MediaRoot)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.SetupRouter(handlers.Router{
		Articles:  handlers.NewArticleHandler(articleService, httpHelper),
		Frontpage: handlers.NewFrontpageHandler(frontpageService, cfg.SectionFrontpageLimit, httpHelper),
		Sections:  handlers.NewSectionHandler(sectionService, personService, httpHelper),
		Tags:      handlers.NewTagHandler(tagService, httpHelper),
		Images:    handlers.NewImageHandler(imageService, httpHelper),
		Helper:    httpHelper,
		JWTSecret: []byte(cfg.JWTSecret),
	})

	// Start server
	logger.Info("Server starting", map[string]interface{}{"port": cfg.Port, "env": cfg.Env})
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Error("Server stopped", err)
		os.Exit(1)
	}
}
