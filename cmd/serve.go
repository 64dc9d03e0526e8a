package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Tajudeen-boss/Neptune-task/internal/search"
	"github.com/Tajudeen-boss/Neptune-task/internal/server"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the search API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Anthropic.Key == "" {
			zap.L().Warn("no anthropic key configured; searches will use fallback intent and summaries")
		}

		st := store.NewMemStore()
		defer st.Close()

		aiClient := anthropic.NewClient(cfg.Anthropic.Key)
		pipeline := search.NewPipeline(st, aiClient, cfg.Anthropic)

		serverCfg := cfg.Server
		if servePort != 0 {
			serverCfg.Port = servePort
		}
		srv := server.NewServer(pipeline, st, &serverCfg, zap.L())

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
