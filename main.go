package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/Zachkp/bento-portfolio/internal/catalog"
	"github.com/Zachkp/bento-portfolio/internal/config"
	"github.com/Zachkp/bento-portfolio/internal/site"
	"github.com/Zachkp/bento-portfolio/internal/store"
	"github.com/Zachkp/bento-portfolio/internal/tracking"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("portfolio", pflag.ContinueOnError)
	cfg.BindFlags(flags)
	check := flags.Bool("check", false, "validate the project catalog and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	projects, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if *check {
		fmt.Printf("catalog ok: %d projects\n", projects.Len())
		return nil
	}

	gin.SetMode(cfg.Mode)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := site.Options{Config: cfg, Catalog: projects}
	if cfg.TrackVisitors {
		db, err := openAnalytics(ctx, cfg, time.Now())
		if err != nil {
			return err
		}
		defer db.Close()

		opts.Analytics = db
		opts.Tracker = tracking.New(db)
		defer opts.Tracker.Wait()
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	}

	r, err := site.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("Serving %d projects on %s", projects.Len(), cfg.Addr())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openAnalytics opens the visitor database and drops visits older than the
// retention window before any new ones are recorded.
func openAnalytics(ctx context.Context, cfg config.Config, now time.Time) (*store.SQLiteStore, error) {
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening analytics database: %w", err)
	}
	// Clean up old visitor data for privacy compliance
	if _, err := tracking.Prune(ctx, db, cfg.VisitorRetention, now); err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
	}
	return db, nil
}
