package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"devconnector_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// maxPasswordBytes はbcryptが扱える入力の上限バイト数です。
	maxPasswordBytes = 72

	// dummyHash はユーザーが存在しない場合のタイミング攻撃緩和用ハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	hashCost     int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
	}
}

// normalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: must be at most %d bytes long", ErrPasswordTooLong, maxPasswordBytes)
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、そのユーザーのトークンを返します。
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}

	email = normalizeEmail(email)
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Avatar:   gravatarURL(email),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// CurrentUser returns the user behind an authenticated request.
// The token may outlive the account, so ErrUserNotFound is possible.
func (u *authUsecase) CurrentUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
