/*
main.go - Application entry point

PURPOSE:
  Starts the lease accounting engine server: configuration, storage
  selection, dependency injection, graceful shutdown.

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: lease.db, ":memory:" for in-memory)
  -redis   Redis address (host:port); overrides -db when set

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for active
  requests, close the store, exit.

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite, store/redis: KV implementations
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/lease-engine/api"
	"github.com/warp/lease-engine/lease"
	"github.com/warp/lease-engine/store/redis"
	"github.com/warp/lease-engine/store/sqlite"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "lease.db", "SQLite database path")
	redisAddr := flag.String("redis", "", "Redis address (host:port); overrides -db")
	flag.Parse()

	kv, closer, err := openStore(*dbPath, *redisAddr)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closer.Close()

	handler := api.NewHandler(kv)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// openStore picks the KV backend: Redis when an address is given, embedded
// SQLite otherwise.
func openStore(dbPath, redisAddr string) (lease.KV, io.Closer, error) {
	if redisAddr != "" {
		kv := redis.New(redisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := kv.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis at %s: %w", redisAddr, err)
		}
		log.Printf("Using Redis store at %s", redisAddr)
		return kv, kv, nil
	}

	kv, err := sqlite.New(dbPath)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Using SQLite store at %s", dbPath)
	return kv, kv, nil
}
