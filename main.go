package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docbot/web/internal/client"
	"github.com/docbot/web/internal/config"
	"github.com/docbot/web/internal/handler"
	"github.com/docbot/web/internal/logger"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
	"github.com/docbot/web/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title DocBot Web API
// @version 1.0
// @description JSON surface over the DocBot medical assistant backend.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// 백엔드 게이트웨이와 서비스 생성
	backend := client.NewBackendClient(cfg.Backend, log)
	symptomSvc := service.NewSymptomService(backend, log)
	chatSvc := service.NewChatService(backend, log)
	medicalSvc := service.NewMedicalInfoService(backend, log)

	// 방문자 세션 (메모리 전용)
	if cfg.Session.Secret == "" {
		log.Warn("SESSION_SECRET is not set; visitor cookies will not survive a restart")
	}
	store := session.NewStore(cfg.Session.TTL)
	signer, err := session.NewTokenSigner(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		log.Fatal("failed to create session signer", zap.Error(err))
	}

	tmpl, err := view.Load()
	if err != nil {
		log.Fatal("failed to parse templates", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log))
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(view.Static()))

	// 헬스체크
	router.GET("/ping", handler.Ping)
	router.GET("/healthz", handler.Healthz)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	// 화면
	symptomHandler := handler.NewSymptomHandler(symptomSvc, log)
	chatHandler := handler.NewChatHandler(chatSvc, cfg.CORS.AllowedOrigins, log)
	medicalHandler := handler.NewMedicalInfoHandler(medicalSvc, log)

	pages := router.Group("/")
	pages.Use(handler.VisitorMiddleware(store, signer, cfg.Session.CookieSecure))
	{
		pages.GET("/", handler.Home)
		pages.GET("/about", handler.About)
		pages.GET("/symptoms", symptomHandler.Page)
		pages.POST("/symptoms", symptomHandler.Analyze)
		pages.GET("/chat", chatHandler.Page)
		pages.POST("/chat", chatHandler.Send)
		pages.GET("/chat/ws", chatHandler.Stream)
		pages.GET("/medical-info", medicalHandler.Page)
		pages.POST("/medical-info", medicalHandler.Search)
	}

	// JSON API
	apiHandler := handler.NewAPIHandler(backend, symptomSvc, chatSvc, medicalSvc)
	api := router.Group("/api/v1")
	api.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	{
		api.OPTIONS("/*path", handler.Preflight)
		api.GET("/health", apiHandler.BackendHealth)
		api.GET("/rag-status", apiHandler.RAGStatus)
		api.POST("/analyze-symptoms", apiHandler.AnalyzeSymptoms)
		api.POST("/chat", apiHandler.Chat)
		api.GET("/medical-info/*condition", apiHandler.MedicalInfo)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("backend", backend.BaseURL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// 종료 신호 대기 후 진행 중인 요청을 마무리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
