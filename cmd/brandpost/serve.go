package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/brandpost/internal/api"
	"github.com/dgallion1/brandpost/internal/llm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `serve builds the chunk corpus (or loads the saved one when CHUNK_ON_START
is false) and exposes post generation over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(os.Stdout)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := buildCorpus(ctx, cfg, log, cfg.ChunkOnStart)
		if err != nil {
			log.Error("build corpus", "error", err)
			return err
		}

		stats := llm.NewStats(statsWindow)
		svc, err := buildService(cfg, store, stats, log)
		if err != nil {
			return err
		}

		srv := api.NewServer(svc, store, stats, log, cfg)
		httpServer := &http.Server{
			Addr:        ":" + cfg.Port,
			Handler:     srv,
			ReadTimeout: 30 * time.Second,
			// Three sequential model calls, each possibly retried.
			WriteTimeout: 10 * time.Minute,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			log.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting brandpost", "port", cfg.Port, "chunks", len(store),
			"gen_model", cfg.GenModel, "translate_model", cfg.TranslateModel)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
