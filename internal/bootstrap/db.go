package bootstrap

import (
	"github.com/taskdesk/taskdesk/internal/conf"
	"github.com/taskdesk/taskdesk/internal/db"
	"github.com/taskdesk/taskdesk/pkg/utils"
)

// InitDB opens the configured database and returns the store handed to the
// request handlers.
func InitDB() *db.Store {
	store, err := db.New(conf.Conf)
	if err != nil {
		utils.Log.Fatalf("failed to connect database: %+v", err)
	}
	utils.Log.Infof("database ready, type: %s", conf.Conf.Database.Type)
	return store
}
