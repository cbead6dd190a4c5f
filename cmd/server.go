package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/taskdesk/taskdesk/internal/bootstrap"
	"github.com/taskdesk/taskdesk/internal/conf"
	"github.com/taskdesk/taskdesk/pkg/utils"
	"github.com/taskdesk/taskdesk/server"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		store := bootstrap.InitDB()
		if !conf.Conf.Debug {
			gin.SetMode(gin.ReleaseMode)
		}
		gin.DefaultWriter = utils.Log.Out

		engine := gin.New()
		server.Init(engine, store)

		addr := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Scheme.HTTPPort)
		srv := &http.Server{Addr: addr, Handler: engine}
		go func() {
			utils.Log.Infof("listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				utils.Log.Fatalf("failed to start server: %+v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.Log.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			utils.Log.Errorf("server shutdown: %+v", err)
		}
		if err := store.Close(); err != nil {
			utils.Log.Errorf("closing database: %+v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
