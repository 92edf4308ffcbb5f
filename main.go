package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"marketofmanycards/market-api/app"
	"marketofmanycards/market-api/aws"
	"marketofmanycards/market-api/config"
	"marketofmanycards/market-api/db"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/internal/service"
	"marketofmanycards/market-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	notifyWorkers   = 2
	notifyQueueSize = 100
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := config.Setup(os.Args[1:]); err != nil {
		panic(err)
	}

	if err := app.MakeLogger(viper.GetString("app.log_level")); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	if err := run(); err != nil {
		zap.L().Fatal("Server stopped", zap.Error(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gdb, err := db.New()
	if err != nil {
		return err
	}

	onDelete, err := service.ParseDeletePolicy(viper.GetString("listings.on_user_delete"))
	if err != nil {
		return err
	}

	var notifier service.Notifier
	if viper.GetBool("mail.enabled") {
		queue := service.NewNotifyQueue(service.NewMailNotifier(
			viper.GetString("mail.host"),
			viper.GetInt("mail.port"),
			viper.GetString("mail.sender"),
			viper.GetString("mail.password"),
			viper.GetString("host.domain"),
		), notifyWorkers, notifyQueueSize)

		queue.StartWorkerPool()
		defer queue.Close()

		notifier = queue
	}

	d := internal.NewDeps(store.New(gdb), onDelete, notifier)

	if path := viper.GetString("seed.catalog"); path != "" {
		if err := seedCatalog(ctx, d, path); err != nil {
			return err
		}
	}

	router := app.NewRouter(ctx, d, app.Options{
		Origins:     config.Origins(),
		RateLimit:   viper.GetInt("security.rate_limit"),
		MaxBodySize: viper.GetInt64("security.max_body_size"),
		CatalogTTL:  time.Duration(viper.GetInt("cache.catalog_ttl")) * time.Second,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", viper.GetInt("host.port")),
		Handler: router,
	}

	errCh := make(chan error, 1)

	go func() {
		zap.L().Info("Server starting", zap.String("addr", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown, %w", err)
	}

	zap.L().Info("Server exited")
	return nil
}

// seedCatalog loads the seed file before the server starts accepting requests.
// The S3 client is only built for s3:// paths.
func seedCatalog(ctx context.Context, d *internal.Deps, path string) error {
	var objects service.ObjectDownloader

	if strings.HasPrefix(path, "s3://") {
		s3, err := aws.NewS3(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client, %w", err)
		}
		objects = s3
	}

	if _, err := service.LoadSeed(ctx, d.Catalog, objects, path); err != nil {
		return fmt.Errorf("failed to seed catalog, %w", err)
	}

	return nil
}
