package conf

type Database struct {
	Type        string `json:"type" env:"TYPE" envDefault:"sqlite3"`
	Host        string `json:"host" env:"HOST" envDefault:"localhost"`
	Port        int    `json:"port" env:"PORT" envDefault:"0"`
	User        string `json:"user" env:"USER"`
	Password    string `json:"password" env:"PASS"`
	Name        string `json:"name" env:"NAME"`
	DBFile      string `json:"db_file" env:"FILE" envDefault:"data/taskdesk.db"`
	TablePrefix string `json:"table_prefix" env:"TABLE_PREFIX"`
	SSLMode     string `json:"ssl_mode" env:"SSL_MODE" envDefault:"disable"`
	DSN         string `json:"dsn" env:"DSN"`
}

type Scheme struct {
	Address  string `json:"address" env:"ADDR" envDefault:"0.0.0.0"`
	HTTPPort int    `json:"http_port" env:"PORT" envDefault:"5000"`
}

type LogConfig struct {
	Enable     bool   `json:"enable" env:"ENABLE"`
	Name       string `json:"name" env:"NAME" envDefault:"data/log/taskdesk.log"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE" envDefault:"50"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS" envDefault:"30"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE" envDefault:"28"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type Config struct {
	Debug    bool      `json:"debug" env:"DEBUG"`
	Scheme   Scheme    `json:"scheme"`
	Database Database  `json:"database" envPrefix:"DB_"`
	Log      LogConfig `json:"log" envPrefix:"LOG_"`
}

// Conf is the process configuration, populated by bootstrap.InitConfig.
var Conf *Config

func DefaultConfig() *Config {
	return &Config{
		Scheme: Scheme{
			Address:  "0.0.0.0",
			HTTPPort: 5000,
		},
		Database: Database{
			Type:    "sqlite3",
			DBFile:  "data/taskdesk.db",
			SSLMode: "disable",
		},
		Log: LogConfig{
			Name:       "data/log/taskdesk.log",
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
	}
}
