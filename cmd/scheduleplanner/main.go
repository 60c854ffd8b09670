package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-planner/internal/api"
	"schedule-planner/internal/bot"
	"schedule-planner/internal/config"
	"schedule-planner/internal/repository"
	"schedule-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	bucketRepo := repository.NewBucketRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	templateSvc := service.NewTemplateService(templateRepo)
	masterSvc := service.NewMasterService(groupRepo, projectRepo, bucketRepo)
	recurrenceSvc := service.NewRecurrenceService(templateRepo, taskRepo)
	backupSvc := service.NewBackupService(backupRepo)
	reminderSvc := service.NewReminderService(taskRepo, groupRepo)

	// One pass up front so recurring tasks exist before the first request.
	if err := recurrenceSvc.ReconcileAll(ctx, time.Now()); err != nil {
		log.Printf("initial reconcile: %v", err)
	}

	scheduler := service.NewScheduler(time.Local)
	if cfg.ReconcileInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReconcileInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := recurrenceSvc.ReconcileAll(jobCtx, time.Now()); err != nil {
				log.Printf("reconcile: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule reconcile: %v", err)
		}
	}

	if cfg.DigestEnabled() {
		notifier, err := bot.New(cfg.TelegramToken, cfg.TelegramChatID, reminderSvc)
		if err != nil {
			log.Fatalf("notifier: %v", err)
		}
		if _, err := scheduler.ScheduleDaily(cfg.DailyDigestTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notifier.SendDailyDigest(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("digest: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	router := gin.Default()
	taskHandler := api.NewTaskHandler(taskSvc)
	templateHandler := api.NewTemplateHandler(templateSvc)
	masterHandler := api.NewMasterHandler(masterSvc)
	dashboardHandler := api.NewDashboardHandler(taskSvc, masterSvc)
	backupHandler := api.NewBackupHandler(backupSvc)
	api.SetupRoutes(router, taskHandler, templateHandler, masterHandler, dashboardHandler, backupHandler, recurrenceSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Schedule planner listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
