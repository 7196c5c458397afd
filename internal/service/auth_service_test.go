package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"sellapi/internal/auth"
	"sellapi/internal/errors"
	"sellapi/internal/image"
	"sellapi/internal/model"
)

const testResetBase = "https://shop.test"

func newTestAuthService(repo *MockSellRepository, uploader *MockUploader, mail *MockMailer) AuthService {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService, uploader, mail, zerolog.Nop(), "d-reset-template", testResetBase)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockSellRepository)
	uploader := new(MockUploader)
	mail := new(MockMailer)
	svc := newTestAuthService(repo, uploader, mail)

	uploader.On("UploadAvatar", mock.Anything, "data:image/png;base64,xxx").
		Return(&image.Upload{PublicID: "avatars/abc", URL: "https://img.test/abc.png"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Sell")).
		Run(func(args mock.Arguments) {
			sell := args.Get(1).(*model.Sell)
			sell.ID = primitive.NewObjectID()
		}).
		Return(nil)

	sell, token, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "supersecret",
		Avatar:   "data:image/png;base64,xxx",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.RoleUser, sell.Role)
	assert.Equal(t, "avatars/abc", sell.Avatar.PublicID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(sell.Password), []byte("supersecret")))
	repo.AssertExpectations(t)
	uploader.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockSellRepository)
	uploader := new(MockUploader)
	mail := new(MockMailer)
	svc := newTestAuthService(repo, uploader, mail)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Sell")).
		Return(errors.ErrEmailTaken)

	_, token, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, errors.ErrEmailTaken)
	assert.Empty(t, token)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	sell := &model.Sell{
		ID:       primitive.NewObjectID(),
		Email:    "a@x.com",
		Password: hashPassword(t, "rightpw"),
		Role:     model.RoleUser,
	}
	repo.On("FindByEmailWithPassword", mock.Anything, "a@x.com").Return(sell, nil)

	got, token, err := svc.Login(context.Background(), "a@x.com", "rightpw")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, sell.ID, got.ID)
}

func TestLogin_SameErrorForBothFailures(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	sell := &model.Sell{
		ID:       primitive.NewObjectID(),
		Email:    "a@x.com",
		Password: hashPassword(t, "rightpw"),
	}
	repo.On("FindByEmailWithPassword", mock.Anything, "a@x.com").Return(sell, nil)
	repo.On("FindByEmailWithPassword", mock.Anything, "nobody@x.com").Return(nil, errors.ErrSellNotFound)

	_, _, wrongPwErr := svc.Login(context.Background(), "a@x.com", "wrongpw")
	_, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "whatever")

	assert.ErrorIs(t, wrongPwErr, errors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, errors.ErrInvalidCredentials)
	assert.Equal(t, wrongPwErr.Error(), unknownErr.Error())
}

func TestForgotPassword_StoresHashedTokenAndMailsRawToken(t *testing.T) {
	repo := new(MockSellRepository)
	mail := new(MockMailer)
	svc := newTestAuthService(repo, new(MockUploader), mail)

	sell := &model.Sell{ID: primitive.NewObjectID(), Email: "a@x.com"}
	id := sell.ID.Hex()

	var storedHash string
	var storedExpire time.Time
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(sell, nil)
	repo.On("SetResetToken", mock.Anything, id, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
			storedExpire = args.Get(3).(time.Time)
		}).
		Return(nil)

	var mailedURL string
	mail.On("Send", mock.Anything, "a@x.com", "d-reset-template", mock.Anything).
		Run(func(args mock.Arguments) {
			data := args.Get(3).(map[string]interface{})
			mailedURL = data["reset_url"].(string)
		}).
		Return(nil)

	err := svc.ForgotPassword(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.True(t, storedExpire.After(time.Now()))
	assert.Len(t, storedHash, 64)

	prefix := testResetBase + "/password/reset/"
	assert.True(t, strings.HasPrefix(mailedURL, prefix))
	rawToken := strings.TrimPrefix(mailedURL, prefix)
	assert.Equal(t, storedHash, hashResetToken(rawToken))
	repo.AssertNotCalled(t, "ClearResetToken", mock.Anything, mock.Anything)
}

func TestForgotPassword_MailFailureClearsToken(t *testing.T) {
	repo := new(MockSellRepository)
	mail := new(MockMailer)
	svc := newTestAuthService(repo, new(MockUploader), mail)

	sell := &model.Sell{ID: primitive.NewObjectID(), Email: "a@x.com"}
	id := sell.ID.Hex()

	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(sell, nil)
	repo.On("SetResetToken", mock.Anything, id, mock.Anything, mock.Anything).Return(nil)
	repo.On("ClearResetToken", mock.Anything, id).Return(nil)
	mail.On("Send", mock.Anything, "a@x.com", "d-reset-template", mock.Anything).
		Return(assert.AnError)

	err := svc.ForgotPassword(context.Background(), "a@x.com")

	assert.ErrorIs(t, err, errors.ErrMailDelivery)
	repo.AssertCalled(t, "ClearResetToken", mock.Anything, id)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	repo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, errors.ErrSellNotFound)

	err := svc.ForgotPassword(context.Background(), "nobody@x.com")

	assert.ErrorIs(t, err, errors.ErrSellNotFound)
	repo.AssertNotCalled(t, "SetResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword_Success(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	rawToken := "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
	sell := &model.Sell{ID: primitive.NewObjectID(), Email: "a@x.com", Role: model.RoleUser}
	id := sell.ID.Hex()

	repo.On("FindByResetToken", mock.Anything, hashResetToken(rawToken)).Return(sell, nil)

	var storedHash string
	repo.On("UpdatePassword", mock.Anything, id, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	got, token, err := svc.ResetPassword(context.Background(), rawToken, "brandnewpw")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, sell.ID, got.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("brandnewpw")))
}

func TestResetPassword_InvalidOrExpiredToken(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	repo.On("FindByResetToken", mock.Anything, mock.Anything).Return(nil, errors.ErrInvalidResetToken)

	_, _, err := svc.ResetPassword(context.Background(), "expired-or-bogus", "brandnewpw")

	assert.ErrorIs(t, err, errors.ErrInvalidResetToken)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePassword_WrongOldPasswordDoesNotMutate(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	sell := &model.Sell{
		ID:       primitive.NewObjectID(),
		Password: hashPassword(t, "rightpw"),
	}
	repo.On("FindByIDWithPassword", mock.Anything, sell.ID.Hex()).Return(sell, nil)

	_, _, err := svc.UpdatePassword(context.Background(), sell.ID.Hex(), "wrongpw", "newpw123")

	assert.ErrorIs(t, err, errors.ErrBadOldPassword)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePassword_Success(t *testing.T) {
	repo := new(MockSellRepository)
	svc := newTestAuthService(repo, new(MockUploader), new(MockMailer))

	sell := &model.Sell{
		ID:       primitive.NewObjectID(),
		Password: hashPassword(t, "rightpw"),
		Role:     model.RoleUser,
	}
	id := sell.ID.Hex()

	repo.On("FindByIDWithPassword", mock.Anything, id).Return(sell, nil)
	repo.On("UpdatePassword", mock.Anything, id, mock.AnythingOfType("string")).Return(nil)

	_, token, err := svc.UpdatePassword(context.Background(), id, "rightpw", "newpw123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	repo.AssertExpectations(t)
}
