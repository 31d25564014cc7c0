package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
	"github.com/webcraft-academy/elearn-api/pkg/mailer"
)

// UserService implements signup, login, role management, profile
// updates and password recovery.
type UserService struct {
	Repo         repo.UserRepository
	JWT          *helpers.JWTManager
	GCS          *storage.Client
	GCSBucket    string
	Redis        *redis.Client
	Logger       *logrus.Logger
	Notifier     Notifier
	AppName      string
	ResetCodeTTL time.Duration
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger, notifier Notifier, appName string, resetCodeTTL time.Duration) *UserService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &UserService{
		Repo:         r,
		JWT:          jwt,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		Redis:        rdb,
		Logger:       logger,
		Notifier:     notifier,
		AppName:      appName,
		ResetCodeTTL: resetCodeTTL,
	}
}

// notify enqueues a notification email. Failures are logged only: a
// request's outcome never depends on email delivery.
func (s *UserService) notify(ctx context.Context, to, template string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["AppName"] = s.AppName
	job := mailer.EmailJob{To: to, Template: template, Data: data}
	if err := s.Notifier.Send(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("template", template).Warn("notification email not enqueued")
	}
}

type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	DateOfBirth string
}

// Signup creates the user with a hashed credential and uploads the
// profile image. Email uniqueness is enforced by the insert itself, so
// two concurrent signups with the same address produce one row.
func (s *UserService) Signup(ctx context.Context, in SignupInput, image io.Reader, filename, contentType string) (*entity.User, error) {
	var imageURL string
	if image != nil {
		url, err := s.uploadImage(ctx, "avatars", filename, contentType, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Password:    hash,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		ImageURL:    imageURL,
		Role:        entity.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.notify(ctx, u.Email, mailer.TemplateWelcome, map[string]any{"Name": u.FirstName})
	return u, nil
}

// Login checks the credential and issues a 3-day session token carrying
// the user id and role. An unknown email and a wrong password report
// differently; the SPA relies on the distinction.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrUserNotFound
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.notify(ctx, u.Email, mailer.TemplateLogin, map[string]any{"Name": u.FirstName})
	return u, token, exp, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

// Logout has no server-side session state to destroy; it exists for the
// notification email the SPA expects.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	s.notify(ctx, u.Email, mailer.TemplateLogout, map[string]any{"Name": u.FirstName})
	return nil
}

// UpdateRole changes the target's role. The HTTP layer additionally
// gates this behind an admin session.
func (s *UserService) UpdateRole(ctx context.Context, targetID, newRole string) (*entity.User, error) {
	if !entity.ValidRole(newRole) {
		return nil, ErrInvalidRole
	}
	u, err := s.Repo.UpdateRole(ctx, targetID, newRole)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.notify(ctx, u.Email, mailer.TemplateRoleUpdated, map[string]any{"Name": u.FirstName, "Role": u.Role})
	return u, nil
}

type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	DateOfBirth string
}

// UpdateProfile updates the caller's own profile. image may be nil when
// the current picture is kept.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput, image io.Reader, filename, contentType string) (*entity.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.DateOfBirth != "" {
		u.DateOfBirth = in.DateOfBirth
	}
	if image != nil {
		url, err := s.uploadImage(ctx, "avatars", filename, contentType, image)
		if err != nil {
			return nil, err
		}
		u.ImageURL = url
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.notify(ctx, u.Email, mailer.TemplateProfileUpdated, map[string]any{"Name": u.FirstName})
	return u, nil
}

// ForgotPassword issues a recovery code. Unknown addresses are silently
// accepted so the endpoint cannot be used to enumerate accounts.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}
	code, err := helpers.GenResetCode()
	if err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.Set(ctx, helpers.KeyResetCode(email), code, s.ResetCodeTTL).Err(); err != nil {
			return err
		}
	}
	s.notify(ctx, u.Email, mailer.TemplateResetCode, map[string]any{
		"Name":      u.FirstName,
		"Code":      code,
		"ExpiresIn": s.ResetCodeTTL.String(),
	})
	return nil
}

// VerifyCode checks a recovery code and marks the address eligible for
// a password reset.
func (s *UserService) VerifyCode(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.Redis == nil {
		return ErrInvalidResetCode
	}
	stored, err := s.Redis.Get(ctx, helpers.KeyResetCode(email)).Result()
	if err != nil || stored == "" || stored != code {
		return ErrInvalidResetCode
	}
	return s.Redis.Set(ctx, helpers.KeyResetVerified(email), "1", s.ResetCodeTTL).Err()
}

// ResetPassword sets a new credential for an address whose code was
// verified.
func (s *UserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.Redis == nil {
		return ErrInvalidResetCode
	}
	if v, _ := s.Redis.Get(ctx, helpers.KeyResetVerified(email)).Result(); v != "1" {
		return ErrInvalidResetCode
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, email, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Redis.Del(ctx, helpers.KeyResetCode(email), helpers.KeyResetVerified(email))
	return nil
}

func (s *UserService) uploadImage(ctx context.Context, prefix, filename, contentType string, r io.Reader) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}
