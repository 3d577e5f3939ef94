package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"teodity/internal/domain/entity"
)

func TestListHidesBlockedUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userUC := NewUserUseCase(f.users, f.products, f.store)

	visible := f.seedUser(t, "visible", entity.RoleBuyer)
	hidden := f.seedUser(t, "hidden", entity.RoleBuyer)
	hidden.Blocked = true
	require.NoError(t, f.users.Update(ctx, hidden))

	users, err := userUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, visible.ID, users[0].ID)
	assert.Empty(t, users[0].Password)

	_, err = userUC.GetByID(ctx, hidden.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found!")
}

func TestUpdateCredentialsRequiresCurrentPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userUC := NewUserUseCase(f.users, f.products, f.store)

	user := f.seedUser(t, "mila", entity.RoleBuyer)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.Password = string(hash)
	require.NoError(t, f.users.Update(ctx, user))

	_, err = userUC.UpdateCredentials(ctx, user.ID, UpdateCredentialsInput{
		CurrentPassword: "wrong", Username: "renamed",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Current password is incorrect!")

	updated, err := userUC.UpdateCredentials(ctx, user.ID, UpdateCredentialsInput{
		CurrentPassword: "hunter22", Username: "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
}

func TestUpdateCredentialsUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userUC := NewUserUseCase(f.users, f.products, f.store)

	f.seedUser(t, "taken", entity.RoleBuyer)
	user := f.seedUser(t, "mila", entity.RoleBuyer)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.Password = string(hash)
	require.NoError(t, f.users.Update(ctx, user))

	_, err = userUC.UpdateCredentials(ctx, user.ID, UpdateCredentialsInput{
		CurrentPassword: "hunter22", Username: "taken",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username already exists!")

	_, err = userUC.UpdateCredentials(ctx, user.ID, UpdateCredentialsInput{
		CurrentPassword: "hunter22", Mail: "taken@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already exists!")
}

func TestUpdateProfileReplacesImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userUC := NewUserUseCase(f.users, f.products, f.store)

	user := f.seedUser(t, "mila", entity.RoleBuyer)
	user.Image = "old-avatar.png"
	require.NoError(t, f.users.Update(ctx, user))

	updated, err := userUC.UpdateProfile(ctx, user.ID, UpdateProfileInput{Image: "new-avatar.png"})
	require.NoError(t, err)
	assert.Equal(t, "new-avatar.png", updated.Image)
	assert.Contains(t, f.store.removed, "old-avatar.png")
}

func TestBlockUserRetiresListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userUC := NewUserUseCase(f.users, f.products, f.store)

	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	listing := f.seedProduct(t, &entity.Product{
		Name: "Open listing", Price: 100, Type: entity.TypeFixed, Seller: seller.ID,
	})

	require.NoError(t, userUC.Block(ctx, seller.ID))

	blocked, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.True(t, blocked.Blocked)

	gone, err := f.products.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.True(t, gone.Deleted)
}
