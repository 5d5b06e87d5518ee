package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupchat-dev/groupchat/internal/models"
)

func TestCreateWithMember(t *testing.T) {
	db := newTestDB(t)
	groupRepo := NewGroupRepository(db)
	membershipRepo := NewMembershipRepository(db)

	owner := seedUser(t, db, "owner")

	group := &models.Group{Name: "Trail Friends"}
	require.NoError(t, groupRepo.CreateWithMember(group, owner.ID))
	assert.NotZero(t, group.ID)

	isMember, err := membershipRepo.IsMember(owner.ID, group.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
}

// Group names are not unique. Creating a second group with the same name
// must attach the creator to the new id, not a pre-existing one.
func TestCreateWithMember_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	groupRepo := NewGroupRepository(db)
	membershipRepo := NewMembershipRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	first := &models.Group{Name: "Trail Friends"}
	require.NoError(t, groupRepo.CreateWithMember(first, alice.ID))

	second := &models.Group{Name: "Trail Friends"}
	require.NoError(t, groupRepo.CreateWithMember(second, bob.ID))

	assert.NotEqual(t, first.ID, second.ID)

	isMember, err := membershipRepo.IsMember(bob.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	isMember, err = membershipRepo.IsMember(bob.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestList(t *testing.T) {
	db := newTestDB(t)
	groupRepo := NewGroupRepository(db)

	groups, err := groupRepo.List()
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.NotNil(t, groups)

	owner := seedUser(t, db, "owner")
	seedGroup(t, db, "Sentinels", owner.ID)
	seedGroup(t, db, "Duelists", owner.ID)

	groups, err = groupRepo.List()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Sentinels", groups[0].Name)
	assert.Equal(t, "Duelists", groups[1].Name)
}
