package bootstrap

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"github.com/taskdesk/taskdesk/internal/conf"
	"github.com/taskdesk/taskdesk/pkg/utils"
)

func InitLog() {
	log := utils.Log
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if conf.Conf.Debug {
		log.SetLevel(logrus.DebugLevel)
		log.SetReportCaller(true)
	}
	logCfg := conf.Conf.Log
	if logCfg.Enable {
		writer := &lumberjack.Logger{
			Filename:   logCfg.Name,
			MaxSize:    logCfg.MaxSize,
			MaxBackups: logCfg.MaxBackups,
			MaxAge:     logCfg.MaxAge,
			Compress:   logCfg.Compress,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, writer))
	}
}
