package appliance

import "time"

// Base holds the fields every record has
type Base struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (b *Base) base() *Base { return b }

// Record is implemented by the appliance record types
type Record interface {
	base() *Base
}

// Disk is a physical disk
type Disk struct {
	Base
	Serial    string `json:"serial"`
	Model     string `json:"model"`
	SizeBytes int64  `json:"size_bytes"`
	Pool      string `json:"pool,omitempty"`
	Healthy   bool   `json:"healthy"`
}

// Pool is a storage pool built from disks
type Pool struct {
	Base
	Status         string `json:"status"`
	SizeBytes      int64  `json:"size_bytes"`
	AllocatedBytes int64  `json:"allocated_bytes"`
	Disks          int    `json:"disks"`
}

// Share is a dataset exported to clients
type Share struct {
	Base
	Pool        string `json:"pool"`
	Path        string `json:"path"`
	QuotaBytes  int64  `json:"quota_bytes"`
	Compression string `json:"compression"`
}

// Snapshot is a point in time copy of a share
type Snapshot struct {
	Base
	ShareID   string    `json:"share_id"`
	CreatedAt time.Time `json:"created_at"`
	UsedBytes int64     `json:"used_bytes"`
}

// User is a local account
type User struct {
	Base
	Email string `json:"email"`
	UID   int    `json:"uid"`
	Admin bool   `json:"admin"`
}

// NetworkInterface is a configured network port
type NetworkInterface struct {
	Base
	MAC  string `json:"mac"`
	IPv4 string `json:"ipv4,omitempty"`
	MTU  int    `json:"mtu"`
	Up   bool   `json:"up"`
}

// NFSExport publishes a share path over NFS
type NFSExport struct {
	Base
	Path     string `json:"path"`
	Clients  string `json:"clients"`
	ReadOnly bool   `json:"read_only"`
}

// ReplicationTask copies a share to a remote appliance
type ReplicationTask struct {
	Base
	Source    string `json:"source"`
	Target    string `json:"target"`
	Frequency string `json:"frequency"`
	Enabled   bool   `json:"enabled"`
}
