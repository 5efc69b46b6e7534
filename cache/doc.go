// Package cache provides a small typed JSON cache on redis.
//
// The list client uses it to keep recently fetched pages keyed by their
// resolved URL:
//
//	rc, err := cache.NewClient(ctx, cfg.Data.Redis)
//	pages := cache.NewCache[paging.Result[Disk]](rc, "nasadmin:pages", time.Minute)
//	_ = pages.Set(ctx, url, &result)
//
// A Cache built on a nil client is disabled, so callers need no separate
// code path when redis is not configured.
package cache
