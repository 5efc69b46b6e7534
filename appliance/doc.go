// Package appliance defines the storage appliance records served by the
// dev server and a SQLite store for them.
//
//	store, err := appliance.Open(ctx, cfg.Data.SQLite)
//	if err := store.Seed(ctx, 40); err != nil { ... }
//
//	items, total, err := store.Page(ctx, appliance.Snapshots, shareID, 20, 10)
//
// Snapshots are scoped by their share; every other resource is top level.
package appliance
