package commands

import (
	"database/sql"
	"os"
	"time"

	"beup-results/internal/batch"
	"beup-results/internal/report"
	"beup-results/internal/results"
	"beup-results/internal/store"
	"beup-results/lib/configutil"
	"beup-results/lib/configutil/dbconfig"
)

type Config struct {
	Database dbconfig.Struct `json:"database"`
	Range    batch.Range     `json:"range"`

	UrlTemplate      string          `json:"url_template"`
	UserAgent        string          `json:"user_agent"`
	TimeoutSeconds   int             `json:"timeout_seconds"`
	DelayMillis      int             `json:"delay_ms"`
	BypassCloudflare bool            `json:"bypass_cloudflare"`
	Anchors          results.Anchors `json:"anchors"`

	ReportTitle string `json:"report_title"`
}

func defaultConfig() Config {
	return Config{
		Database:       dbconfig.Struct{File: "results.db"},
		Range:          batch.DefaultRange(),
		UrlTemplate:    results.DefaultUrlTemplate,
		UserAgent:      results.DefaultUserAgent,
		TimeoutSeconds: int(results.DefaultTimeout / time.Second),
		DelayMillis:    1000,
		Anchors:        results.DefaultAnchors(),
		ReportTitle:    report.DefaultTitle,
	}
}

// loadConfig reads the config file if there is one and fills everything
// left unset with the defaults.
func loadConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	cfg, err = configutil.WithDefaults(cfg, defaultConfig())
	if err != nil {
		return Config{}, err
	}
	if *dbPath != "" {
		cfg.Database = dbconfig.Struct{File: *dbPath}
	}
	return cfg, nil
}

// openStore opens the configured database, the caller must close the
// returned db.
func openStore(cfg Config) (store.Store, *sql.DB, error) {
	db, err := cfg.Database.OpenDB()
	if err != nil {
		return store.Store{}, nil, err
	}
	return store.NewStore(db), db, nil
}
