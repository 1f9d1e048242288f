package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hospital-records-api/internal/authz"
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
	"hospital-records-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenCachePrefix = "auth_token:"

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// ResolveToken maps an opaque token key to the acting identity.
	// Returns (nil, nil) when the key is unknown.
	ResolveToken(ctx context.Context, key string) (*authz.Actor, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokenRepo   repository.TokenRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tokenRepo repository.TokenRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// User and profile are created as one unit: both rows commit or
	// neither does.
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	// Uniqueness is enforced by the store at write time, never pre-checked:
	// a concurrent signup with the same username still surfaces here as a
	// unique violation.
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleDoctor
	}
	profile := &entity.Profile{
		UserID: user.ID,
		Role:   role,
	}

	if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// The token is issued now but only handed out at login.
	if _, err := u.tokenRepo.GetOrCreate(ctx, u.db, user.ID); err != nil {
		u.log.Warnf("Failed to issue token: %+v", err)
		return nil, err
	}

	return &dto.SignupResponse{
		Message:  "User registered successfully. Please login to get your token.",
		UserID:   user.ID,
		Username: user.Username,
		Role:     profile.Role,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, u.db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}

	// Unknown user and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := u.tokenRepo.GetOrCreate(ctx, u.db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to get or create token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Message:  "Login successful",
		Token:    tok.Key,
		UserID:   user.ID,
		Username: user.Username,
		Role:     roleOf(user),
	}, nil
}

func (u *authUsecase) ResolveToken(ctx context.Context, key string) (*authz.Actor, error) {
	if key == "" {
		return nil, nil
	}

	if actor := u.cachedActor(ctx, key); actor != nil {
		return actor, nil
	}

	tok, err := u.tokenRepo.FindByKey(ctx, u.db, key)
	if err != nil {
		u.log.Warnf("Failed to find token: %+v", err)
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}

	actor := &authz.Actor{
		UserID:    tok.UserID,
		Username:  tok.User.Username,
		Role:      roleOf(&tok.User),
		Superuser: tok.User.IsSuperuser,
	}

	u.cacheActor(ctx, key, actor)

	return actor, nil
}

// cachedActor reads the resolved actor from Redis. Cache failures degrade
// to a store lookup.
func (u *authUsecase) cachedActor(ctx context.Context, key string) *authz.Actor {
	if u.redisClient == nil {
		return nil
	}

	raw, err := u.redisClient.Get(ctx, tokenCachePrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read token cache: %+v", err)
		}
		return nil
	}

	var actor authz.Actor
	if err := json.Unmarshal([]byte(raw), &actor); err != nil {
		u.log.Warnf("Failed to decode cached actor: %+v", err)
		return nil
	}
	return &actor
}

func (u *authUsecase) cacheActor(ctx context.Context, key string, actor *authz.Actor) {
	if u.redisClient == nil {
		return
	}

	raw, err := json.Marshal(actor)
	if err != nil {
		return
	}
	if err := u.redisClient.Set(ctx, tokenCachePrefix+key, raw, u.cacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to cache token: %+v", err)
	}
}

// roleOf reads the user's role, falling back to the profile default when
// the profile is not loaded.
func roleOf(user *entity.User) string {
	if user.Profile != nil {
		return user.Profile.Role
	}
	return entity.RoleDoctor
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
