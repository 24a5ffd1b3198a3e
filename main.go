package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/logger"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitJWT()
}

func setupRouter(client *mongo.Client) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	notesRepo := repository.GetNotesRepo(client)
	bookmarksRepo := repository.GetBookmarksRepo(client)

	noteService := &usecase.NoteService{
		Store: notesRepo,
	}
	bookmarkService := &usecase.BookmarkService{
		Store:    bookmarksRepo,
		Resolver: services.NewTitleResolver(),
	}

	noteHandler := handler.NewNoteHandler(noteService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	healthHandler := handler.NewHealthHandler(client)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Every resource route requires an owner identity
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			notes := protected.Group("/notes")
			{
				notes.GET("", noteHandler.List)
				notes.GET("/:id", noteHandler.GetByID)
				notes.POST("", noteHandler.Create)
				notes.PUT("/:id", noteHandler.Update)
				notes.DELETE("/:id", noteHandler.Delete)
			}

			bookmarks := protected.Group("/bookmarks")
			{
				bookmarks.GET("", bookmarkHandler.List)
				bookmarks.GET("/:id", bookmarkHandler.GetByID)
				bookmarks.POST("", bookmarkHandler.Create)
				bookmarks.PUT("/:id", bookmarkHandler.Update)
				bookmarks.DELETE("/:id", bookmarkHandler.Delete)
			}
		}
	}

	return router
}

func main() {
	serverCfg := config.LoadServerConfig()
	logger.Init(serverCfg.LogLevel, serverCfg.LogPretty)
	defer logger.Sync()

	dbCfg := config.LoadDatabaseConfig()
	client, err := config.ConnectMongo(dbCfg)
	if err != nil {
		logger.L.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := repository.SetupIndexes(client.Database(dbCfg.DatabaseName)); err != nil {
		logger.L.Fatal("failed to create indexes", zap.Error(err))
	}

	router := setupRouter(client)

	serverAddr := fmt.Sprintf(":%s", serverCfg.Port)
	logger.L.Info("server starting", zap.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		logger.L.Fatal("failed to start server", zap.Error(err))
	}
}
