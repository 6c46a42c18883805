package user

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"
	"FreshStock-Backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User // keyed by id
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

type fakeS3 struct {
	uploaded []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName + ".png"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	f.uploaded = append(f.uploaded, objectKey)
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(string) error { return nil }

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string { return "" }

func newUserService(t *testing.T) (UserService, *fakeUserRepository, jwt.JWTService, *fakeS3) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	s3 := &fakeS3{}
	return NewUserService(repo, jwtService, s3), repo, jwtService, s3
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:         "alex",
		Email:        "alex@acme.test",
		Password:     "hunter22",
		Organization: "Acme",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	service, repo, jwtService, _ := newUserService(t)

	res, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	userID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	_, ok := repo.users[userID]
	assert.True(t, ok, "token must embed the new user id")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterDoesNotStorePlaintextPassword(t *testing.T) {
	service, repo, _, _ := newUserService(t)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	for _, u := range repo.users {
		assert.NotEqual(t, "hunter22", u.Password)
		assert.NotEmpty(t, u.Password)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service, _, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, wrongPassword := service.Login(ctx, domain.LoginRequest{Email: "alex@acme.test", Password: "nope"})
	_, unknownEmail := service.Login(ctx, domain.LoginRequest{Email: "nobody@acme.test", Password: "hunter22"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRegisterThenLogin(t *testing.T) {
	service, _, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{Email: "alex@acme.test", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestMeOmitsPasswordHash(t *testing.T) {
	service, _, jwtService, _ := newUserService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)
	userID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)

	me, err := service.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "alex", me.Name)
	assert.Equal(t, "alex@acme.test", me.Email)
	assert.Equal(t, "Acme", me.Organization)
}

func TestUpdatePassword(t *testing.T) {
	service, _, jwtService, _ := newUserService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)
	userID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, domain.UpdatePasswordRequest{OldPassword: "wrong", NewPassword: "changed22"}, userID)
	assert.ErrorIs(t, err, domain.ErrPasswordNotMatch)

	err = service.UpdatePassword(ctx, domain.UpdatePasswordRequest{OldPassword: "hunter22", NewPassword: "changed22"}, userID)
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "alex@acme.test", Password: "changed22"})
	assert.NoError(t, err)
}

func TestUploadAvatarStoresPublicLink(t *testing.T) {
	service, repo, jwtService, s3 := newUserService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)
	userID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)

	avatar := &multipart.FileHeader{
		Filename: "me.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	me, err := service.UploadAvatar(ctx, domain.UploadAvatarRequest{Avatar: avatar}, userID)
	require.NoError(t, err)

	require.Len(t, s3.uploaded, 1)
	assert.Contains(t, me.AvatarURL, s3.uploaded[0])
	assert.Equal(t, me.AvatarURL, repo.users[userID].AvatarURL)
}
