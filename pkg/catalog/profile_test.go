package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesSetGet(t *testing.T) {
	p := Profiles{}

	p.Set(ProfileEnv, "PATH", "/usr/bin")
	p.Set(ProfileCondor, "request_memory", "2 GB")

	v, ok := p.Get(ProfileEnv, "PATH")
	require.True(t, ok)
	assert.Equal(t, "/usr/bin", v)

	v, ok = p.Get(ProfileCondor, "request_memory")
	require.True(t, ok)
	assert.Equal(t, "2 GB", v)
}

func TestProfilesSet_Overwrite(t *testing.T) {
	p := Profiles{}

	p.Set(ProfilePegasus, "clusters.size", 2)
	p.Set(ProfilePegasus, "clusters.size", 4)

	v, ok := p.Get(ProfilePegasus, "clusters.size")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Len(t, p[ProfilePegasus], 1)
}

func TestProfilesGet_Missing(t *testing.T) {
	p := Profiles{}
	p.Set(ProfileEnv, "PATH", "/usr/bin")

	_, ok := p.Get(ProfileEnv, "HOME")
	assert.False(t, ok)

	_, ok = p.Get(ProfileGlobus, "maxtime")
	assert.False(t, ok)
}

func TestEventTypeValid(t *testing.T) {
	tests := []struct {
		event EventType
		valid bool
	}{
		{EventNever, true},
		{EventStart, true},
		{EventError, true},
		{EventSuccess, true},
		{EventEnd, true},
		{EventAll, true},
		{EventType("sometimes"), false},
		{EventType(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.event.IsValid())
		})
	}
}
