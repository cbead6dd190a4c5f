package bootstrap

import (
	"github.com/caarlos0/env/v9"
	"github.com/taskdesk/taskdesk/internal/conf"
	"github.com/taskdesk/taskdesk/pkg/utils"
)

// InitConfig builds the process config from defaults overridden by the
// environment.
func InitConfig() {
	cfg := conf.DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		utils.Log.Fatalf("failed to parse environment config: %+v", err)
	}
	conf.Conf = cfg
}
