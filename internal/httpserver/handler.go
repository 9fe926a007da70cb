package httpserver

import (
	"context"
	"fmt"

	"content-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieName)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerRepositories(); err != nil {
		return fmt.Errorf("failed to register repositories: %w", err)
	}

	r := srv.gin.Group("")

	searchUC, err := srv.setupSearchDomain(ctx)
	if err != nil {
		return err
	}
	categoryRepo, err := srv.setupCategoryDomain(ctx, r, mw)
	if err != nil {
		return err
	}
	postRepo, err := srv.setupPostDomain(ctx, r, mw, categoryRepo, searchUC)
	if err != nil {
		return err
	}
	if err := srv.setupCommentDomain(ctx, r, mw, postRepo); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.RequestID())

	srv.gin.Use(middleware.CORS(srv.allowedOrigins))
	if len(srv.allowedOrigins) == 0 {
		srv.l.Infof(context.Background(), "CORS mode: %s (permissive - any origin, no credentials)", srv.environment)
	} else {
		srv.l.Infof(context.Background(), "CORS mode: %s (strict - %d allowed origins)", srv.environment, len(srv.allowedOrigins))
	}

	srv.gin.Use(mw.Locale())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
