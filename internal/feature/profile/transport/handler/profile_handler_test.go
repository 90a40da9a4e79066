package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnector_backend/internal/feature/profile/domain/entity"
	"devconnector_backend/internal/feature/profile/usecase"
	jwtmw "devconnector_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockProfileUsecase is a function-field mock of ProfileUsecase.
type mockProfileUsecase struct {
	ByUserFunc           func(userID uint) (*entity.Profile, error)
	ListFunc             func() ([]entity.Profile, error)
	UpsertFunc           func(userID uint, in entity.Profile) (*entity.Profile, error)
	DeleteAccountFunc    func(userID uint) error
	AddExperienceFunc    func(userID uint, e entity.Experience) (*entity.Profile, error)
	RemoveExperienceFunc func(userID uint, id string) (*entity.Profile, error)
	AddEducationFunc     func(userID uint, e entity.Education) (*entity.Profile, error)
	RemoveEducationFunc  func(userID uint, id string) (*entity.Profile, error)
	GitHubReposFunc      func(username string) ([]entity.GitHubRepo, error)
}

func (m *mockProfileUsecase) ByUser(_ context.Context, userID uint) (*entity.Profile, error) {
	return m.ByUserFunc(userID)
}

func (m *mockProfileUsecase) List(_ context.Context) ([]entity.Profile, error) {
	return m.ListFunc()
}

func (m *mockProfileUsecase) Upsert(_ context.Context, userID uint, in entity.Profile) (*entity.Profile, error) {
	return m.UpsertFunc(userID, in)
}

func (m *mockProfileUsecase) DeleteAccount(_ context.Context, userID uint) error {
	return m.DeleteAccountFunc(userID)
}

func (m *mockProfileUsecase) AddExperience(_ context.Context, userID uint, e entity.Experience) (*entity.Profile, error) {
	return m.AddExperienceFunc(userID, e)
}

func (m *mockProfileUsecase) RemoveExperience(_ context.Context, userID uint, id string) (*entity.Profile, error) {
	return m.RemoveExperienceFunc(userID, id)
}

func (m *mockProfileUsecase) AddEducation(_ context.Context, userID uint, e entity.Education) (*entity.Profile, error) {
	return m.AddEducationFunc(userID, e)
}

func (m *mockProfileUsecase) RemoveEducation(_ context.Context, userID uint, id string) (*entity.Profile, error) {
	return m.RemoveEducationFunc(userID, id)
}

func (m *mockProfileUsecase) GitHubRepos(_ context.Context, username string) ([]entity.GitHubRepo, error) {
	return m.GitHubReposFunc(username)
}

const callerID uint = 1

// newRouter mounts the handler with a stub gate that authenticates callerID.
func newRouter(uc ProfileUsecase) *gin.Engine {
	h := NewProfileHandler(uc)
	r := gin.New()
	auth := func(c *gin.Context) { c.Set(jwtmw.ContextUserID, callerID) }

	r.GET("/api/profile", h.List)
	r.GET("/api/profile/user/:user_id", h.ByUser)
	r.GET("/api/profile/github/:username", h.GitHubRepos)
	r.GET("/api/profile/me", auth, h.Me)
	r.POST("/api/profile", auth, h.Upsert)
	r.DELETE("/api/profile", auth, h.DeleteAccount)
	r.PUT("/api/profile/xp", auth, h.AddExperience)
	r.DELETE("/api/profile/xp/:exp_id", auth, h.DeleteExperience)
	r.PUT("/api/profile/edu", auth, h.AddEducation)
	r.DELETE("/api/profile/edu/:edu_id", auth, h.DeleteEducation)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleProfile() *entity.Profile {
	return &entity.Profile{
		ID:     10,
		UserID: callerID,
		Status: "Developer",
		Skills: []string{"Go"},
		Owner:  entity.Owner{ID: callerID, Name: "Jane", Avatar: "av"},
	}
}

func TestProfileHandler_Me(t *testing.T) {
	t.Run("returns profile with owner", func(t *testing.T) {
		uc := &mockProfileUsecase{ByUserFunc: func(userID uint) (*entity.Profile, error) {
			assert.Equal(t, callerID, userID)
			return sampleProfile(), nil
		}}

		w := do(t, newRouter(uc), http.MethodGet, "/api/profile/me", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Developer", got["status"])
		assert.Equal(t, map[string]any{"_id": float64(1), "name": "Jane", "avatar": "av"}, got["user"])
		assert.Equal(t, []any{}, got["experience"])
	})

	t.Run("no profile is 404", func(t *testing.T) {
		uc := &mockProfileUsecase{ByUserFunc: func(uint) (*entity.Profile, error) { return nil, usecase.ErrProfileNotFound }}

		w := do(t, newRouter(uc), http.MethodGet, "/api/profile/me", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"There is no profile for this user"}`, w.Body.String())
	})
}

func TestProfileHandler_Upsert(t *testing.T) {
	t.Run("validation errors list every missing field", func(t *testing.T) {
		w := do(t, newRouter(&mockProfileUsecase{}), http.MethodPost, "/api/profile", gin.H{"company": "Acme"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"msg":"Status is required","param":"status"},{"msg":"Skills is required","param":"skills"}]}`, w.Body.String())
	})

	t.Run("skills string is split", func(t *testing.T) {
		var got entity.Profile
		uc := &mockProfileUsecase{UpsertFunc: func(userID uint, in entity.Profile) (*entity.Profile, error) {
			got = in
			return sampleProfile(), nil
		}}

		w := do(t, newRouter(uc), http.MethodPost, "/api/profile", gin.H{
			"status": "Developer", "skills": "Go, SQL", "twitter": "https://twitter.com/jane",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Go", "SQL"}, got.Skills)
		assert.Equal(t, "https://twitter.com/jane", got.Social.Twitter)
	})
	t.Run("blank status and empty skills list are rejected", func(t *testing.T) {
		w := do(t, newRouter(&mockProfileUsecase{}), http.MethodPost, "/api/profile", gin.H{"status": "  ", "skills": " , "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"msg":"Status is required","param":"status"},{"msg":"Skills is required","param":"skills"}]}`, w.Body.String())
	})

	t.Run("deleted user is 404", func(t *testing.T) {
		uc := &mockProfileUsecase{UpsertFunc: func(uint, entity.Profile) (*entity.Profile, error) {
			return nil, usecase.ErrUserNotFound
		}}

		w := do(t, newRouter(uc), http.MethodPost, "/api/profile", gin.H{"status": "Developer", "skills": "Go"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"User not found"}`, w.Body.String())
	})
}

func TestProfileHandler_ByUser(t *testing.T) {
	uc := &mockProfileUsecase{ByUserFunc: func(userID uint) (*entity.Profile, error) {
		if userID == 1 {
			return sampleProfile(), nil
		}
		return nil, usecase.ErrProfileNotFound
	}}
	r := newRouter(uc)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/profile/user/1", http.StatusOK},
		{"/api/profile/user/2", http.StatusNotFound},
		{"/api/profile/user/not-an-id", http.StatusNotFound},
		{"/api/profile/user/0", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestProfileHandler_List(t *testing.T) {
	uc := &mockProfileUsecase{ListFunc: func() ([]entity.Profile, error) {
		return []entity.Profile{*sampleProfile(), *sampleProfile()}, nil
	}}

	w := do(t, newRouter(uc), http.MethodGet, "/api/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestProfileHandler_DeleteAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockProfileUsecase{DeleteAccountFunc: func(userID uint) error { return nil }}

		w := do(t, newRouter(uc), http.MethodDelete, "/api/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"msg":"User deleted"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		uc := &mockProfileUsecase{DeleteAccountFunc: func(uint) error { return errors.New("tx failed") }}

		w := do(t, newRouter(uc), http.MethodDelete, "/api/profile", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"msg":"Internal server error"}`, w.Body.String())
	})
}

func TestProfileHandler_Experience(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		w := do(t, newRouter(&mockProfileUsecase{}), http.MethodPut, "/api/profile/xp", gin.H{"title": "Dev", "from": "yesterday"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"msg":"Company is required","param":"company"},{"msg":"From date is required (YYYY-MM-DD)","param":"from"}]}`, w.Body.String())
	})

	t.Run("add", func(t *testing.T) {
		uc := &mockProfileUsecase{AddExperienceFunc: func(userID uint, e entity.Experience) (*entity.Profile, error) {
			p := sampleProfile()
			e.ID = "new"
			p.AddExperience(e)
			return p, nil
		}}

		w := do(t, newRouter(uc), http.MethodPut, "/api/profile/xp", gin.H{"title": "Dev", "company": "Acme", "from": "2020-01-01"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"_id":"new"`)
	})

	t.Run("add without profile", func(t *testing.T) {
		uc := &mockProfileUsecase{AddExperienceFunc: func(uint, entity.Experience) (*entity.Profile, error) {
			return nil, usecase.ErrProfileNotFound
		}}

		w := do(t, newRouter(uc), http.MethodPut, "/api/profile/xp", gin.H{"title": "Dev", "company": "Acme", "from": "2020-01-01"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete unknown entry", func(t *testing.T) {
		uc := &mockProfileUsecase{RemoveExperienceFunc: func(userID uint, id string) (*entity.Profile, error) {
			assert.Equal(t, "abc", id)
			return nil, usecase.ErrExperienceNotFound
		}}

		w := do(t, newRouter(uc), http.MethodDelete, "/api/profile/xp/abc", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"Experience not found"}`, w.Body.String())
	})
}

func TestProfileHandler_Education(t *testing.T) {
	t.Run("missing fieldofstudy", func(t *testing.T) {
		w := do(t, newRouter(&mockProfileUsecase{}), http.MethodPut, "/api/profile/edu",
			gin.H{"school": "MIT", "degree": "BSc", "from": "2010-09-01"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"msg":"Field of study is required","param":"fieldofstudy"}]}`, w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		uc := &mockProfileUsecase{RemoveEducationFunc: func(userID uint, id string) (*entity.Profile, error) {
			return sampleProfile(), nil
		}}

		w := do(t, newRouter(uc), http.MethodDelete, "/api/profile/edu/e1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProfileHandler_GitHubRepos(t *testing.T) {
	tests := []struct {
		name   string
		repos  []entity.GitHubRepo
		err    error
		status int
	}{
		{name: "found", repos: []entity.GitHubRepo{{Name: "hello", Stars: 3}}, status: http.StatusOK},
		{name: "unknown user", err: usecase.ErrGitHubUserNotFound, status: http.StatusNotFound},
		{name: "transport failure", err: errors.New("dial tcp: timeout"), status: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockProfileUsecase{GitHubReposFunc: func(string) ([]entity.GitHubRepo, error) { return tt.repos, tt.err }}

			w := do(t, newRouter(uc), http.MethodGet, "/api/profile/github/octocat", nil)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"stargazers_count":3`)
			}
			if tt.status == http.StatusNotFound {
				assert.JSONEq(t, `{"msg":"No Github profile found"}`, w.Body.String())
			}
		})
	}
}
