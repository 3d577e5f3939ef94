package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teodity/internal/domain/entity"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	authUC := NewAuthUseCase(f.users, "test-secret", 3600)

	user, err := authUC.Register(ctx, RegisterInput{
		Name:            "Mila",
		Surname:         "Petrovic",
		Username:        "mila",
		Mail:            "mila@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Role:            entity.RoleBuyer,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.Password)
	assert.Equal(t, "default.png", user.Image)

	// the stored record keeps a hash, never the plaintext
	stored, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "hunter22", stored.Password)

	result, err := authUC.Login(ctx, "mila", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.User.Password)

	_, err = authUC.Login(ctx, "mila", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong password!")

	_, err = authUC.Login(ctx, "nobody", "hunter22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid username!")
}

func TestRegisterGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	authUC := NewAuthUseCase(f.users, "test-secret", 3600)

	base := RegisterInput{
		Name:            "Mila",
		Surname:         "Petrovic",
		Username:        "mila",
		Mail:            "mila@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Role:            entity.RoleBuyer,
	}

	_, err := authUC.Register(ctx, base)
	require.NoError(t, err)

	mismatch := base
	mismatch.Username = "other"
	mismatch.Mail = "other@example.com"
	mismatch.ConfirmPassword = "different"
	_, err = authUC.Register(ctx, mismatch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password confirmation does not match!")

	adminRole := base
	adminRole.Username = "other"
	adminRole.Mail = "other@example.com"
	adminRole.Role = entity.RoleAdministrator
	_, err = authUC.Register(ctx, adminRole)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Role must be Buyer or Seller!")

	dupUsername := base
	dupUsername.Mail = "fresh@example.com"
	_, err = authUC.Register(ctx, dupUsername)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username already exists!")

	dupMail := base
	dupMail.Username = "fresh"
	_, err = authUC.Register(ctx, dupMail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already exists!")
}

func TestBlockedUserCannotLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	authUC := NewAuthUseCase(f.users, "test-secret", 3600)

	user, err := authUC.Register(ctx, RegisterInput{
		Name:            "Mila",
		Surname:         "Petrovic",
		Username:        "mila",
		Mail:            "mila@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Role:            entity.RoleSeller,
	})
	require.NoError(t, err)

	stored, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	stored.Blocked = true
	require.NoError(t, f.users.Update(ctx, stored))

	_, err = authUC.Login(ctx, "mila", "hunter22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid username!")
}
