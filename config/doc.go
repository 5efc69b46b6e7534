// Package config loads nasadmin configuration with Viper, with support for
// environment overrides and hot-reloading.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("./config.yaml")
//	if err != nil {
//	    return err
//	}
//
// An empty path searches /etc/nasadmin, $HOME/.nasadmin, the working
// directory and the executable's directory; when no file is found the
// defaults apply.
//
// # Configuration Format
//
//	app_name: nasadmin
//	run_mode: debug
//
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	  seed_count: 37
//
//	client:
//	  base_url: http://127.0.0.1:8080
//	  page_size: 10
//	  timeout: 30s
//	  echo_count: true
//	  cache_ttl: 10s
//	  breaker:
//	    enabled: true
//	    failure_ratio: 0.6
//
//	logger:
//	  level: 4        # logrus level, 4 = info
//	  format: json
//	  output: stdout
//
//	data:
//	  sqlite:
//	    source: file:nasadmin.db?cache=shared&mode=rwc
//	  redis:
//	    addr: 127.0.0.1:6379
//
//	observes:
//	  tracer:
//	    endpoint: 127.0.0.1:4317
//
// # Environment Variables
//
// Keys are overridden by NASADMIN_ prefixed variables with dots replaced
// by underscores:
//
//	export NASADMIN_CLIENT_BASE_URL=http://nas.local:8080
//	export NASADMIN_CLIENT_PAGE_SIZE=25
//
// # Hot Reloading
//
//	cfg.Watch(func(next *config.Config) {
//	    logger.StdLogger().ApplyLevel(next.Logger.Level)
//	}, nil)
//
// # Provider Sets
//
// ProviderSet extracts the sub-configurations for Wire injectors.
package config
