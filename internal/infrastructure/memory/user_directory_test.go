package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

var _ ports.UserRepository = (*UserDirectory)(nil)

func TestUserDirectory_UsernamesAreUnique(t *testing.T) {
	d := NewUserDirectory()
	require.NoError(t, d.Add(domain.User{Username: "admin", Role: domain.RoleAdmin}))

	err := d.Add(domain.User{Username: "admin", Role: domain.RoleFarmer})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Equal(t, 1, d.Count())
}

func TestUserDirectory_FindAndList(t *testing.T) {
	d := NewUserDirectory()
	require.NoError(t, d.Add(domain.User{Username: "admin", Role: domain.RoleAdmin}))
	require.NoError(t, d.Add(domain.User{Username: "ali", Role: domain.RoleFarmer}))

	u, ok := d.FindByUsername("ali")
	require.True(t, ok)
	assert.Equal(t, domain.RoleFarmer, u.Role)

	_, ok = d.FindByUsername("Ali")
	assert.False(t, ok, "lookup is case-sensitive")

	users := d.List()
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "ali", users[1].Username)
}
