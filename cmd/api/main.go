package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/seungyeah/tootodo-be/internal/adapter/db"
	httpadapter "github.com/seungyeah/tootodo-be/internal/adapter/http"
	"github.com/seungyeah/tootodo-be/internal/adapter/http/handlers"
	httpmiddleware "github.com/seungyeah/tootodo-be/internal/adapter/http/middleware"
	mongoadapter "github.com/seungyeah/tootodo-be/internal/adapter/mongo"
	"github.com/seungyeah/tootodo-be/internal/app/service"
	"github.com/seungyeah/tootodo-be/internal/config"
	"github.com/seungyeah/tootodo-be/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close postgres connection", zap.Error(err))
		}
	}()

	mongoDB, err := mongoadapter.ConnectDB(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Warn("failed to close mongodb connection", zap.Error(err))
		}
	}()

	taskRepo := mongoadapter.NewTaskRepository(mongoDB)
	propertyRepo := mongoadapter.NewPropertyRepository(mongoDB)
	blockRepo := mongoadapter.NewBlockRepository(mongoDB)
	chatRepo := mongoadapter.NewChatRepository(mongoDB)
	categoryRepo := dbadapter.NewCategoryRepository(db)

	builder := service.NewAggregateBuilder(taskRepo, propertyRepo, blockRepo, chatRepo, categoryRepo)
	taskService := service.NewTaskService(taskRepo, propertyRepo, blockRepo, categoryRepo, builder)
	propertyService := service.NewPropertyService(taskRepo, propertyRepo)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db, mongoDB)
	taskHandler := handlers.NewTaskHandler(taskService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, propertyHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
