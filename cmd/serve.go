package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saborlocal.pe/SaborLocal/configs"
	"saborlocal.pe/SaborLocal/pkg/auth"
	"saborlocal.pe/SaborLocal/pkg/repository"
	"saborlocal.pe/SaborLocal/pkg/server"
	"saborlocal.pe/SaborLocal/pkg/storage"
)

const (
	headerTimeout = 5 * time.Second
	corsMaxAge    = 12 * time.Hour
)

type ServeCmd struct {
	ConfigFile string `default:".SaborLocal.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewManager(conf, repo, logger)
	fileStore := storage.NewFileStore(conf.Uploads.Dir, logger)

	userServer := server.NewUserServer(repo, authManager, logger)
	dishServer := server.NewDishServer(repo, repo, repo, logger)
	reviewServer := server.NewReviewServer(repo, logger)
	imageServer := server.NewImageServer(repo, fileStore, conf.Uploads.PublicPath, logger)

	if !cliCtx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), configureCORS(), authManager.SessionMiddleware())

	registerRoutes(router, conf, authManager, userServer, dishServer, reviewServer, imageServer)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: headerTimeout,
		Handler:           router,
	}

	logger.Info("starting server", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func registerRoutes(router *gin.Engine, conf *configs.Config, authManager *auth.Manager,
	userServer *server.UserServer, dishServer *server.DishServer,
	reviewServer *server.ReviewServer, imageServer *server.ImageServer,
) {
	api := router.Group("/api")

	api.POST("/auth/register", userServer.HandleRegister)
	api.POST("/auth/login", userServer.HandleLogin)
	api.POST("/auth/logout", userServer.HandleLogout)
	api.GET("/auth/me", userServer.HandleCurrentUser)

	api.GET("/dishes", dishServer.HandleList)
	api.GET("/dishes/:id", dishServer.HandleGet)
	api.GET("/dishes/:id/reviews", reviewServer.HandleListByDish)
	api.GET("/establishments/:id/reviews", reviewServer.HandleListByEstablishment)
	api.GET("/categories", dishServer.HandleCategories)
	api.GET("/images", imageServer.HandleListByEntity)

	authed := api.Group("", authManager.RequireUser())
	authed.POST("/dishes", dishServer.HandleCreate)
	authed.PUT("/dishes/:id", dishServer.HandleUpdate)
	authed.DELETE("/dishes/:id", dishServer.HandleDelete)
	authed.GET("/establishment/dishes", dishServer.HandleOwnDishes)
	authed.POST("/reviews", reviewServer.HandleCreate)
	authed.POST("/reviews/:id/vote", reviewServer.HandleVote)
	authed.POST("/images", imageServer.HandleUpload)
	authed.POST("/images/:id/primary", imageServer.HandleSetPrimary)
	authed.DELETE("/images/:id", imageServer.HandleDelete)

	router.GET(conf.Uploads.PublicPath+"/*filepath", imageServer.HandleServeFile)
}

func configureCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowHeaders:     []string{"Accept", "Accept-Encoding", "Accept-Language", "Authorization", "Cache-Control", "Content-Type", "Origin", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
