package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/nasadmin/config"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

const dialTimeout = 5 * time.Second

// ErrDisabled is returned by NewClient when no redis address is configured
var ErrDisabled = errors.New("redis cache disabled")

// NewClient connects to redis and verifies the connection with a ping
func NewClient(ctx context.Context, conf *config.Redis) (*redis.Client, error) {
	if conf == nil || conf.Addr == "" {
		return nil, ErrDisabled
	}

	rc := redis.NewClient(&redis.Options{
		Addr:        conf.Addr,
		Username:    conf.Username,
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: dialTimeout,
		PoolSize:    10,
		// keep the client from sending CLIENT MAINT_NOTIFICATIONS ON
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	timeout, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := rc.Ping(timeout).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("redis connect error: %w", err)
	}

	return rc, nil
}
