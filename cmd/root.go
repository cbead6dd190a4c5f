package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/taskdesk/taskdesk/internal/bootstrap"
)

var RootCmd = &cobra.Command{
	Use:   "taskdesk",
	Short: "A task tracking API with per-task comment threads",
	Long: `Taskdesk serves a JSON API for managing tasks and the comments
attached to them, backed by a relational database (sqlite by default).`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Init runs the startup sequence shared by commands that touch config or
// the database.
func Init() {
	bootstrap.InitConfig()
	bootstrap.InitLog()
}
