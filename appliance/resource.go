package appliance

import (
	"errors"
	"fmt"
	"strings"
)

// Resource names a list endpoint of the appliance API
type Resource string

const (
	Disks       Resource = "disks"
	Pools       Resource = "pools"
	Shares      Resource = "shares"
	Snapshots   Resource = "snapshots"
	Users       Resource = "users"
	Interfaces  Resource = "interfaces"
	Exports     Resource = "exports"
	Replication Resource = "replication"
)

var (
	// ErrUnknownResource is returned for names outside Resources()
	ErrUnknownResource = errors.New("unknown resource")
	// ErrParentRequired is returned when a child resource is used without
	// its parent id, or a top level resource is given one.
	ErrParentRequired = errors.New("parent mismatch")
)

var resources = []Resource{Disks, Pools, Shares, Snapshots, Users, Interfaces, Exports, Replication}

// Resources returns every resource in display order
func Resources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}

// ParseResource resolves a resource name, case-insensitively
func ParseResource(s string) (Resource, error) {
	name := Resource(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range resources {
		if r == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Parent returns the resource that scopes r, if any
func (r Resource) Parent() (Resource, bool) {
	if r == Snapshots {
		return Shares, true
	}
	return "", false
}

// Path returns the list endpoint path for r, relative to the API root
func (r Resource) Path(parentID string) string {
	if parent, ok := r.Parent(); ok {
		return fmt.Sprintf("/%s/%s/%s", parent, parentID, r)
	}
	return "/" + string(r)
}

func (r Resource) checkParent(parentID string) error {
	_, scoped := r.Parent()
	switch {
	case scoped && parentID == "":
		return fmt.Errorf("%w: %s needs a parent id", ErrParentRequired, r)
	case !scoped && parentID != "":
		return fmt.Errorf("%w: %s takes no parent id", ErrParentRequired, r)
	}
	return nil
}
