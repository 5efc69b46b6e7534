package appliance

import (
	"context"
	"fmt"
	"time"
)

const gib = int64(1) << 30

// Seed inserts n demo records for every top level resource and between
// one and five snapshots per share, in one transaction.
func (s *Store) Seed(ctx context.Context, n int) (err error) {
	if n <= 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range n {
		records := []struct {
			r   Resource
			rec Record
		}{
			{Disks, &Disk{
				Base:      Base{Name: fmt.Sprintf("ada%d", i)},
				Serial:    fmt.Sprintf("WD-%08d", 10000+i),
				Model:     "WDC WD40EFRX",
				SizeBytes: 4000 * gib,
				Pool:      fmt.Sprintf("tank%d", i%3),
				Healthy:   i%11 != 7,
			}},
			{Pools, &Pool{
				Base:           Base{Name: fmt.Sprintf("tank%d", i)},
				Status:         "ONLINE",
				SizeBytes:      int64(8+i%4) * 1000 * gib,
				AllocatedBytes: int64(i%5+1) * 500 * gib,
				Disks:          2 + i%4,
			}},
			{Users, &User{
				Base:  Base{Name: fmt.Sprintf("user%02d", i)},
				Email: fmt.Sprintf("user%02d@nas.local", i),
				UID:   1000 + i,
				Admin: i == 0,
			}},
			{Interfaces, &NetworkInterface{
				Base: Base{Name: fmt.Sprintf("em%d", i)},
				MAC:  fmt.Sprintf("00:25:90:%02x:%02x:%02x", i/65536%256, i/256%256, i%256),
				IPv4: fmt.Sprintf("10.0.%d.%d/24", i/250, i%250+2),
				MTU:  1500,
				Up:   i%4 != 3,
			}},
			{Exports, &NFSExport{
				Base:     Base{Name: fmt.Sprintf("export%d", i)},
				Path:     fmt.Sprintf("/mnt/tank%d/share%d", i%3, i),
				Clients:  "10.0.0.0/16",
				ReadOnly: i%2 == 1,
			}},
			{Replication, &ReplicationTask{
				Base:      Base{Name: fmt.Sprintf("replicate-share%d", i)},
				Source:    fmt.Sprintf("tank%d/share%d", i%3, i),
				Target:    fmt.Sprintf("backup.nas.local:tank/share%d", i),
				Frequency: "daily",
				Enabled:   i%5 != 0,
			}},
		}
		for _, item := range records {
			if err = put(ctx, tx, item.r, "", item.rec); err != nil {
				return err
			}
		}

		share := &Share{
			Base:        Base{Name: fmt.Sprintf("share%d", i)},
			Pool:        fmt.Sprintf("tank%d", i%3),
			Path:        fmt.Sprintf("/mnt/tank%d/share%d", i%3, i),
			QuotaBytes:  int64(i%10+1) * 100 * gib,
			Compression: "lz4",
		}
		if err = put(ctx, tx, Shares, "", share); err != nil {
			return err
		}
		for j := range 1 + i%5 {
			snap := &Snapshot{
				Base:      Base{Name: fmt.Sprintf("%s@auto-%02d", share.Name, j)},
				ShareID:   share.ID,
				CreatedAt: epoch.Add(time.Duration(i*24+j) * time.Hour),
				UsedBytes: int64(j+1) * gib,
			}
			if err = put(ctx, tx, Snapshots, share.ID, snap); err != nil {
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
