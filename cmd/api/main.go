package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "assettrack-backend/internal/adapter/http"
	"assettrack-backend/internal/adapter/middleware"
	"assettrack-backend/internal/adapter/repository/mysql"
	"assettrack-backend/internal/config"
	"assettrack-backend/internal/domain/asset"
	"assettrack-backend/internal/domain/audit"
	"assettrack-backend/internal/domain/notification"
	"assettrack-backend/internal/domain/request"
	"assettrack-backend/internal/infrastructure/cache"
	"assettrack-backend/internal/infrastructure/db"
	assetuc "assettrack-backend/internal/usecase/asset"
	borrowuc "assettrack-backend/internal/usecase/borrow"
	"assettrack-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := gdb.AutoMigrate(
		&asset.Asset{},
		&request.BorrowRequest{},
		&audit.Entry{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}

	assetRepo := mysql.NewAssetRepository(gdb)
	requestRepo := mysql.NewRequestRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	borrowUC := borrowuc.NewUsecase(requestRepo, txm, logger.Named(log, "borrow"), cfg.AdminIDs)
	assetUC := assetuc.NewUsecase(assetRepo, txm)

	h := httpadp.NewHandler()
	borrowH := httpadp.NewBorrowHandler(borrowUC)
	assetH := httpadp.NewAssetHandler(assetUC)
	notifH := httpadp.NewNotificationHandler(notifRepo)
	auditH := httpadp.NewAuditHandler(auditRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger.Named(log, "idempotency")))

	e.GET("/health", h.Health)

	e.POST("/assets", assetH.Create)
	e.GET("/assets", assetH.List)
	e.GET("/assets/:asset_id", assetH.Get)
	e.PATCH("/assets/:asset_id/status", assetH.SetStatus)

	e.POST("/borrow-requests", borrowH.Submit)
	e.GET("/borrow-requests/pending", borrowH.ListPending)
	e.GET("/borrow-requests/:request_id", borrowH.Get)
	e.POST("/borrow-requests/:request_id/approve", borrowH.Approve)
	e.POST("/borrow-requests/:request_id/decline", borrowH.Decline)
	e.POST("/borrow-requests/:request_id/cancel", borrowH.Cancel)
	e.POST("/borrow-requests/:request_id/complete", borrowH.Complete)
	e.GET("/users/:requester_id/borrow-requests", borrowH.ListByRequester)

	e.GET("/users/:user_id/notifications", notifH.ListByRecipient)
	e.POST("/notifications/:id/read", notifH.MarkRead)

	e.GET("/audit", auditH.ListRecent)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
