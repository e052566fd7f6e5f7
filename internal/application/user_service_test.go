package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/civictrack/internal/api/middleware"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos, time.Hour)
	return svc, mockUser
}

func stubToken(t *testing.T) {
	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, role user.Role, exp time.Duration) (string, error) {
		return "token123", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGen })
}

// --------------------- Signup ---------------------
func TestSignup_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubToken(t)

	input := user.SignupInput{
		Name:     "Alice",
		Email:    " Alice@Example.com ",
		Password: "123456",
	}

	mockUser.EXPECT().GetUserByEmail("alice@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleCitizen, u.Role)
		assert.True(t, u.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("123456")))
		u.ID = 7
		return nil
	})

	u, token, err := svc.Signup(input)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "token123", token)
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{ID: 1}, nil)

	_, _, err := svc.Signup(user.SignupInput{Name: "Bob", Email: "bob@example.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSignup_RaceOnUniqueEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, _, err := svc.Signup(user.SignupInput{Name: "Bob", Email: "bob@example.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignup_ShortPassword(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, _, err := svc.Signup(user.SignupInput{Name: "Bob", Email: "bob@example.com", Password: "123"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignup_StorageError(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{}, errors.New("connection reset"))

	_, _, err := svc.Signup(user.SignupInput{Name: "Bob", Email: "bob@example.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrStorage)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubToken(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Email: "bob@example.com", HashedPassword: string(hashed), Role: user.RoleDepartment, IsActive: true}
	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(usr, nil)

	u, token, err := svc.Login("BOB@example.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, user.RoleDepartment, u.Role)
	assert.Equal(t, "token123", token)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{ID: 1, HashedPassword: string(hashed), IsActive: true}, nil)

	u, token, err := svc.Login("bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, user.User{}, u)
	assert.Empty(t, token)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByEmail("ghost@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{ID: 1, HashedPassword: string(hashed), IsActive: false}, nil)

	_, _, err := svc.Login("bob@example.com", "123456")
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- GetUser / UpdateRole ---------------------
func TestGetUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.GetUser(9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateRole_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	gomock.InOrder(
		mockUser.EXPECT().UpdateRole(uint(3), user.RoleDepartment).Return(nil),
		mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3, Role: user.RoleDepartment}, nil),
	)

	u, err := svc.UpdateRole(3, user.RoleDepartment)
	assert.NoError(t, err)
	assert.Equal(t, user.RoleDepartment, u.Role)
}

func TestUpdateRole_InvalidRole(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateRole(3, user.Role("mayor"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateRole_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	mockUser.EXPECT().UpdateRole(uint(3), user.RoleAdmin).Return(gorm.ErrRecordNotFound)

	_, err := svc.UpdateRole(3, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
