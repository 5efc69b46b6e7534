package appliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResource(t *testing.T) {
	r, err := ParseResource(" Disks ")
	require.NoError(t, err)
	assert.Equal(t, Disks, r)

	_, err = ParseResource("widgets")
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "/disks", Disks.Path(""))
	assert.Equal(t, "/shares/sh1/snapshots", Snapshots.Path("sh1"))

	parent, ok := Snapshots.Parent()
	assert.True(t, ok)
	assert.Equal(t, Shares, parent)

	_, ok = Pools.Parent()
	assert.False(t, ok)
}

func TestResourcesIsACopy(t *testing.T) {
	rs := Resources()
	rs[0] = "mutated"
	assert.Equal(t, Disks, Resources()[0])
}
