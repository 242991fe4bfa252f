package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/testutil"
)

func TestFindByIDs(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewUserRepository()

	alice := testutil.CreateUser(t, db, "alice", models.RoleMember)
	bob := testutil.CreateUser(t, db, "bob", models.RoleMember)
	carol := testutil.CreateUser(t, db, "carol", models.RoleTeamLeader)

	// Duplicate ids collapse, the unknown id is skipped, every existing user
	// comes back exactly once
	users, err := repo.FindByIDs([]string{
		alice.ID, bob.ID, alice.ID,
		"00000000-0000-0000-0000-00000000dead",
		carol.ID, bob.ID,
	})
	require.NoError(t, err)
	require.Len(t, users, 3)

	seen := map[string]int{}
	for _, u := range users {
		seen[u.ID]++
	}
	assert.Equal(t, 1, seen[alice.ID])
	assert.Equal(t, 1, seen[bob.ID])
	assert.Equal(t, 1, seen[carol.ID])
}

func TestFindByIDsEmptyInput(t *testing.T) {
	testutil.SetupDB(t)
	repo := NewUserRepository()

	users, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, users)

	users, err = repo.FindByIDs([]string{""})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFindAllRoleFilter(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewUserRepository()

	testutil.CreateUser(t, db, "alice", models.RoleMember)
	testutil.CreateUser(t, db, "bob", models.RoleTeamLeader)
	testutil.CreateUser(t, db, "carol", models.RoleTeamLeader)

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	leaders, err := repo.FindAll(string(models.RoleTeamLeader))
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	for _, u := range leaders {
		assert.Equal(t, models.RoleTeamLeader, u.Role)
	}
}
