package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/groupchat-dev/groupchat/config"
	"github.com/groupchat-dev/groupchat/internal/models"
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

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{UserName: username}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func seedGroup(t *testing.T, db *gorm.DB, name string, creatorID uint) *models.Group {
	t.Helper()

	group := &models.Group{Name: name}
	require.NoError(t, NewGroupRepository(db).CreateWithMember(group, creatorID))
	return group
}
