package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"devconnector_backend/internal/feature/profile/domain/entity"
)

// ProfileRepository はプロフィールの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ProfileRepository interface {
	// FindByUserID はユーザーのプロフィールを返します。存在しない場合はErrProfileNotFound。
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
	// List は全プロフィールを返します。
	List(ctx context.Context) ([]entity.Profile, error)
	// Upsert はプロフィールのスカラー項目とソーシャルリンクを作成または更新します。
	// 経歴・学歴リストは更新時に保持されます。
	Upsert(ctx context.Context, p *entity.Profile) error
	// SaveHistory は経歴・学歴リストを書き戻します。
	SaveHistory(ctx context.Context, p *entity.Profile) error
}

// OwnerLookup resolves the public name and avatar of users.
type OwnerLookup interface {
	FindOwners(ctx context.Context, ids []uint) (map[uint]entity.Owner, error)
}

// AccountDeleter removes a user together with everything they own.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uint) error
}

// RepoFetcher はGitHubリポジトリ一覧の取得を抽象化します。
type RepoFetcher interface {
	ListRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error)
}

// profileUsecase はプロフィール操作のユースケースを実装します。
type profileUsecase struct {
	profiles ProfileRepository
	owners   OwnerLookup
	accounts AccountDeleter
	github   RepoFetcher

	// newID generates sub-document ids.
	newID func() string
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(profiles ProfileRepository, owners OwnerLookup, accounts AccountDeleter, github RepoFetcher) *profileUsecase {
	return &profileUsecase{
		profiles: profiles,
		owners:   owners,
		accounts: accounts,
		github:   github,
		newID:    uuid.NewString,
	}
}

// ByUser returns the profile of userID joined with its owner.
func (u *profileUsecase) ByUser(ctx context.Context, userID uint) (*entity.Profile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.attachOwners(ctx, []*entity.Profile{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every profile joined with its owner.
func (u *profileUsecase) List(ctx context.Context) ([]entity.Profile, error) {
	ps, err := u.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	ptrs := make([]*entity.Profile, len(ps))
	for i := range ps {
		ptrs[i] = &ps[i]
	}
	if err := u.attachOwners(ctx, ptrs); err != nil {
		return nil, err
	}
	return ps, nil
}

// Upsert creates the caller's profile or replaces its fields.
// Experience and education are kept. The token may outlive the account,
// so the user is checked first.
func (u *profileUsecase) Upsert(ctx context.Context, userID uint, in entity.Profile) (*entity.Profile, error) {
	owners, err := u.owners.FindOwners(ctx, []uint{userID})
	if err != nil {
		return nil, fmt.Errorf("find profile owner: %w", err)
	}
	if _, ok := owners[userID]; !ok {
		return nil, ErrUserNotFound
	}

	in.ID = 0
	in.UserID = userID
	in.Skills = normalizeSkills(in.Skills)
	in.Experience = nil
	in.Education = nil

	if err := u.profiles.Upsert(ctx, &in); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return u.ByUser(ctx, userID)
}

// DeleteAccount removes the caller's posts, profile and user.
func (u *profileUsecase) DeleteAccount(ctx context.Context, userID uint) error {
	if err := u.accounts.DeleteAccount(ctx, userID); err != nil {
		return fmt.Errorf("delete account %d: %w", userID, err)
	}
	return nil
}

// AddExperience prepends e to the caller's experience.
func (u *profileUsecase) AddExperience(ctx context.Context, userID uint, e entity.Experience) (*entity.Profile, error) {
	return u.editHistory(ctx, userID, func(p *entity.Profile) error {
		e.ID = u.newID()
		p.AddExperience(e)
		return nil
	})
}

// RemoveExperience deletes the experience entry expID.
func (u *profileUsecase) RemoveExperience(ctx context.Context, userID uint, expID string) (*entity.Profile, error) {
	return u.editHistory(ctx, userID, func(p *entity.Profile) error {
		if !p.RemoveExperience(expID) {
			return ErrExperienceNotFound
		}
		return nil
	})
}

// AddEducation prepends e to the caller's education.
func (u *profileUsecase) AddEducation(ctx context.Context, userID uint, e entity.Education) (*entity.Profile, error) {
	return u.editHistory(ctx, userID, func(p *entity.Profile) error {
		e.ID = u.newID()
		p.AddEducation(e)
		return nil
	})
}

// RemoveEducation deletes the education entry eduID.
func (u *profileUsecase) RemoveEducation(ctx context.Context, userID uint, eduID string) (*entity.Profile, error) {
	return u.editHistory(ctx, userID, func(p *entity.Profile) error {
		if !p.RemoveEducation(eduID) {
			return ErrEducationNotFound
		}
		return nil
	})
}

// GitHubRepos returns the newest public repositories of username.
func (u *profileUsecase) GitHubRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrGitHubUserNotFound
	}
	return u.github.ListRepos(ctx, username)
}

// editHistory loads the caller's profile, applies edit and stores the
// sub-document lists. Nothing is written when edit fails.
func (u *profileUsecase) editHistory(ctx context.Context, userID uint, edit func(*entity.Profile) error) (*entity.Profile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := edit(p); err != nil {
		return nil, err
	}
	if err := u.profiles.SaveHistory(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile history: %w", err)
	}
	if err := u.attachOwners(ctx, []*entity.Profile{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *profileUsecase) attachOwners(ctx context.Context, ps []*entity.Profile) error {
	if len(ps) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.UserID)
	}
	owners, err := u.owners.FindOwners(ctx, ids)
	if err != nil {
		return fmt.Errorf("find profile owners: %w", err)
	}
	for _, p := range ps {
		if o, ok := owners[p.UserID]; ok {
			p.Owner = o
		} else {
			p.Owner = entity.Owner{ID: p.UserID}
		}
	}
	return nil
}

// normalizeSkills trims each skill and drops empty ones.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
