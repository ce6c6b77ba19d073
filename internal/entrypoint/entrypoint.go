package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PraxisPercival/Bookmarker/internal/browsers"
	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	http_controllers "github.com/PraxisPercival/Bookmarker/internal/http"
	"github.com/PraxisPercival/Bookmarker/internal/scheduler"
	"github.com/PraxisPercival/Bookmarker/internal/services"
	"github.com/PraxisPercival/Bookmarker/internal/tasks"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. SIGKILL cannot be caught, so
	// it is not in the list.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler and task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookmarker v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Browser sources, in scan order. Config overrides take precedence
	// over the per-OS default locations.
	sources := []tracker.Source{
		browsers.NewChromeSource(cfg.Browsers.ChromeBookmarksPath),
		browsers.NewEdgeSource(cfg.Browsers.EdgeBookmarksPath),
		browsers.NewFirefoxSource(cfg.Browsers.FirefoxProfilesDir),
	}
	for _, source := range sources {
		if path, err := source.BookmarksPath(); err == nil {
			log.Printf("Found %s bookmarks at %s", source.Browser(), path)
		} else {
			log.Printf("%s not found, will be skipped during syncs", source.Browser().DisplayName())
		}
	}

	// One sync service behind every trigger surface, so runs never interleave
	syncService := services.NewSyncService(tracker.NewSyncer(db, sources...), db)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSyncBrowsersQueue(syncService),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// The scheduler is always constructed so the status endpoint can
	// report on it; Start is a no-op when scheduled syncs are disabled.
	sched := scheduler.NewBrowserSyncScheduler(syncService, cfg.Sync.Schedule, cfg.Sync.Enabled)
	if err := sched.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start sync scheduler: %v", err)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		BookmarkStore:  db,
		RunStore:       db,
		BrowserCounter: db,
		SyncRunner:     syncService,
		Sources:        sources,
		TaskClient:     taskClient,
		Scheduler:      sched,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		sched.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
