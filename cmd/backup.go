package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/cashbook-management/internal/backup"
	"github.com/frahmantamala/cashbook-management/pkg/logger"
	"github.com/spf13/cobra"
)

var backupWatch bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the database file",
	Long:  `Write a point-in-time copy of the database into the backup folder. With --watch, keep snapshotting on the configured interval until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := initializeDependencies()
		if err != nil {
			log.Fatalf("failed to initialize dependencies: %v", err)
		}
		defer deps.Close()

		service := backup.NewService(deps.Handle, deps.Config.Backup.Dir, deps.Logger)

		if !backupWatch {
			dst, err := service.Snapshot()
			if err != nil {
				log.Fatalf("backup failed: %v", err)
			}
			fmt.Printf("Backup written: %s\n", dst)
			return
		}

		ctx := logger.With(context.Background(), "command", "backup")
		scheduler := backup.NewScheduler(service, deps.Config.Backup.Interval, logger.From(ctx))

		ctx, cancel := context.WithCancel(ctx)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			sig := <-sigChan
			deps.Logger.Info("received signal, shutting down...", "signal", sig)
			cancel()
		}()

		scheduler.Run(ctx)
		deps.Logger.Info("backup scheduler stopped")
	},
}

func init() {
	backupCmd.Flags().BoolVar(&backupWatch, "watch", false, "keep snapshotting on the configured interval")
}
