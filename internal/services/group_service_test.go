package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/groupchat-dev/groupchat/config"
	"github.com/groupchat-dev/groupchat/internal/models"
	"github.com/groupchat-dev/groupchat/internal/repositories"
	"github.com/groupchat-dev/groupchat/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := storage.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   ":memory:",
	})
	require.NoError(t, err)
	return db
}

func TestCreateGroupAndJoinLeave(t *testing.T) {
	db := newTestDB(t)

	groupService := NewGroupService(repositories.NewGroupRepository(db))
	membershipService := NewMembershipService(repositories.NewMembershipRepository(db))
	messageService := NewMessageService(repositories.NewMessageRepository(db))

	creator := &models.User{UserName: "creator"}
	require.NoError(t, repositories.NewUserRepository(db).Create(creator))

	group, err := groupService.CreateGroup(creator.ID, &CreateGroupRequest{Name: "Trail Friends"})
	require.NoError(t, err)
	require.NotZero(t, group.ID)

	isMember, err := membershipService.IsMember(creator.ID, group.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	message, err := messageService.PostMessage(creator.ID, group.ID, &PostMessageRequest{Body: "hi"})
	require.NoError(t, err)
	assert.False(t, message.Timestamp.IsZero())

	messages, err := messageService.ListMessages(group.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Body)

	require.NoError(t, membershipService.Leave(creator.ID, group.ID))
	isMember, err = membershipService.IsMember(creator.ID, group.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	groups, err := groupService.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Trail Friends", groups[0].Name)
}
