package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	authUC "github.com/khoahotran/foliohub/internal/application/usecase/auth"
	portfolioUC "github.com/khoahotran/foliohub/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/foliohub/internal/application/usecase/profile"
	sectionUC "github.com/khoahotran/foliohub/internal/application/usecase/section"
	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/internal/domain/section"
	"github.com/khoahotran/foliohub/internal/domain/user"
	"github.com/khoahotran/foliohub/pkg/apperror"
	"github.com/khoahotran/foliohub/pkg/auth"
	"github.com/khoahotran/foliohub/pkg/logger"
)

// In-memory repositories. The repository interfaces are small enough
// that fakes stay readable and the whole request path runs for real.

type memUserRepo struct {
	mu    sync.Mutex
	users []*user.User
}

func (r *memUserRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return apperror.NewConflict("User with this email or username already exists")
		}
	}
	copied := *u
	r.users = append(r.users, &copied)
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *memUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles []*profile.Profile
}

func (r *memProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	r.profiles = append(r.profiles, &copied)
	return nil
}

func (r *memProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("profile", userID.String())
}

func (r *memProfileRepo) GetByUsername(_ context.Context, username string) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Username == username {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("profile", username)
}

func (r *memProfileRepo) ApplyUpdate(_ context.Context, userID uuid.UUID, upd profile.Update) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID != userID {
			continue
		}
		if upd.FullName != nil {
			p.FullName = *upd.FullName
		}
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Bio != nil {
			p.Bio = *upd.Bio
		}
		if upd.Location != nil {
			p.Location = *upd.Location
		}
		if upd.Avatar != nil {
			p.Avatar = *upd.Avatar
		}
		if upd.SocialLinks != nil {
			p.SocialLinks = upd.SocialLinks
		}
		if upd.Theme != nil {
			p.Theme = *upd.Theme
		}
		if upd.Layout != nil {
			p.Layout = *upd.Layout
		}
		p.UpdatedAt = time.Now().UTC()
		copied := *p
		return &copied, nil
	}
	return nil, apperror.NewNotFound("profile", userID.String())
}

type memSectionRepo struct {
	mu       sync.Mutex
	sections []*section.Section
}

func (r *memSectionRepo) Save(_ context.Context, s *section.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.sections = append(r.sections, &copied)
	return nil
}

func (r *memSectionRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*section.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sections {
		if s.ID == id && s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("section", id.String())
}

func (r *memSectionRepo) ListByOwner(_ context.Context, userID uuid.UUID) ([]*section.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*section.Section, 0)
	for _, s := range r.sections {
		if s.UserID == userID {
			copied := *s
			out = append(out, &copied)
		}
	}
	// insertion order is creation order
	return out, nil
}

func (r *memSectionRepo) ListVisibleByOwner(_ context.Context, userID uuid.UUID) ([]*section.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*section.Section, 0)
	for _, s := range r.sections {
		if s.UserID == userID && s.Visible {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (r *memSectionRepo) Update(_ context.Context, s *section.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.sections {
		if existing.ID == s.ID && existing.UserID == s.UserID {
			copied := *s
			r.sections[i] = &copied
			return nil
		}
	}
	return apperror.NewNotFound("section", s.ID.String())
}

func (r *memSectionRepo) Delete(_ context.Context, id, userID uuid.UUID) (*section.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.sections {
		if s.ID == id && s.UserID == userID {
			copied := *s
			r.sections = append(r.sections[:i], r.sections[i+1:]...)
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("section", id.String())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	userRepo := &memUserRepo{}
	profileRepo := &memProfileRepo{}
	sectionRepo := &memSectionRepo{}

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)

	signupUseCase := authUC.NewSignupUseCase(userRepo, profileRepo, log)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, log)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, nil, log)
	uploadAvatarUseCase := profileUC.NewUploadAvatarUseCase(profileRepo, nil, log)
	createSectionUseCase := sectionUC.NewCreateSectionUseCase(sectionRepo, nil, log)
	listSectionsUseCase := sectionUC.NewListSectionsUseCase(sectionRepo)
	updateSectionUseCase := sectionUC.NewUpdateSectionUseCase(sectionRepo, nil, log)
	deleteSectionUseCase := sectionUC.NewDeleteSectionUseCase(sectionRepo, nil, log)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(profileRepo, sectionRepo, nil, log)

	authHandler := NewAuthHandler(signupUseCase, loginUseCase)
	profileHandler := NewProfileHandler(profileUseCase, uploadAvatarUseCase)
	sectionHandler := NewSectionHandler(createSectionUseCase, listSectionsUseCase, updateSectionUseCase, deleteSectionUseCase)
	portfolioHandler := NewPortfolioHandler(portfolioUseCase)

	authMiddleware := AuthMiddleware(jwtSvc)

	router := gin.New()
	router.Use(ErrorMiddleware(log))

	router.POST("/auth/signup", authHandler.Signup)
	router.POST("/auth/login", authHandler.Login)

	router.GET("/profile/get", authMiddleware, profileHandler.GetProfile)
	router.POST("/profile/update", authMiddleware, profileHandler.UpdateProfile)
	router.POST("/profile/avatar", authMiddleware, profileHandler.UploadAvatar)
	router.GET("/profile/:username", portfolioHandler.GetPortfolio)

	sections := router.Group("/sections")
	sections.Use(authMiddleware)
	{
		sections.POST("/create", sectionHandler.CreateSection)
		sections.GET("/list", sectionHandler.ListSections)
		sections.PATCH("/update", sectionHandler.UpdateSection)
		sections.DELETE("/delete", sectionHandler.DeleteSection)
	}

	s.router = router
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		s.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	var env envelope
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &env))
	return rr, env
}

func (s *APITestSuite) signupAndLogin(username, email, password string) string {
	rr, env := s.do(http.MethodPost, "/auth/signup", "", gin.H{
		"username": username, "email": email, "password": password,
	})
	s.Equal(http.StatusOK, rr.Code)
	s.True(env.Success)

	rr, env = s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	s.Equal(http.StatusOK, rr.Code)

	var data struct {
		Token string `json:"token"`
	}
	s.NoError(json.Unmarshal(env.Data, &data))
	s.NotEmpty(data.Token)
	return data.Token
}

func (s *APITestSuite) Test_Signup_CreatesUserAndDefaultProfile() {
	rr, env := s.do(http.MethodPost, "/auth/signup", "", gin.H{
		"username": "jdoe", "email": "j@d.com", "password": "secret1",
	})
	s.Equal(http.StatusOK, rr.Code)
	s.True(env.Success)
	s.Equal("User registered successfully", env.Message)

	var data struct {
		User  UserDTO `json:"user"`
		Token string  `json:"token"`
	}
	s.NoError(json.Unmarshal(env.Data, &data))
	s.Equal("jdoe", data.User.Username)
	s.Equal("j@d.com", data.User.Email)
	s.Empty(data.Token, "signup does not issue a token")

	// the default profile exists and is reachable after login
	token := s.loginOnly("j@d.com", "secret1")
	rr, env = s.do(http.MethodGet, "/profile/get", token, nil)
	s.Equal(http.StatusOK, rr.Code)

	var p ProfileDTO
	s.NoError(json.Unmarshal(env.Data, &p))
	s.Equal("jdoe", p.Username)
	s.Equal("jdoe", p.FullName)
	s.Equal("blue", p.Theme)
	s.Equal("modern", p.Layout)
}

func (s *APITestSuite) loginOnly(email, password string) string {
	rr, env := s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	s.Equal(http.StatusOK, rr.Code)
	var data struct {
		Token string `json:"token"`
	}
	s.NoError(json.Unmarshal(env.Data, &data))
	return data.Token
}

func (s *APITestSuite) Test_Signup_DuplicateEmailConflict() {
	rr, _ := s.do(http.MethodPost, "/auth/signup", "", gin.H{
		"username": "jdoe", "email": "j@d.com", "password": "secret1",
	})
	s.Equal(http.StatusOK, rr.Code)

	rr, env := s.do(http.MethodPost, "/auth/signup", "", gin.H{
		"username": "someone-else", "email": "j@d.com", "password": "secret1",
	})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.False(env.Success)
	s.Equal("User with this email or username already exists", env.Error)

	// duplicate username, different email: identical error
	rr, env = s.do(http.MethodPost, "/auth/signup", "", gin.H{
		"username": "jdoe", "email": "other@d.com", "password": "secret1",
	})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("User with this email or username already exists", env.Error)
}

func (s *APITestSuite) Test_Signup_Validation() {
	cases := []gin.H{
		{"username": "", "email": "j@d.com", "password": "secret1"},
		{"username": "AB", "email": "j@d.com", "password": "secret1"},
		{"username": "jdoe", "email": "not-an-email", "password": "secret1"},
		{"username": "jdoe", "email": "j@d.com", "password": "12345"},
	}
	for _, body := range cases {
		rr, env := s.do(http.MethodPost, "/auth/signup", "", body)
		s.Equal(http.StatusBadRequest, rr.Code)
		s.False(env.Success)
		s.NotEmpty(env.Error)
	}
}

func (s *APITestSuite) Test_Login_FailuresAreIndistinguishable() {
	s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rrWrongPass, envWrongPass := s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": "j@d.com", "password": "wrong-password",
	})
	rrUnknown, envUnknown := s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": "nobody@d.com", "password": "secret1",
	})

	s.Equal(http.StatusUnauthorized, rrWrongPass.Code)
	s.Equal(rrWrongPass.Code, rrUnknown.Code)
	s.Equal(envWrongPass.Error, envUnknown.Error)
	s.Equal("Invalid credentials", envWrongPass.Error)
}

func (s *APITestSuite) Test_Login_UppercaseEmail() {
	s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, _ := s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": "J@D.COM", "password": "secret1",
	})
	s.Equal(http.StatusOK, rr.Code)
}

func (s *APITestSuite) Test_AuthRequired() {
	req := httptest.NewRequest(http.MethodGet, "/profile/get", nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/profile/get", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr = httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/profile/get", nil)
	req.Header.Set("Authorization", "Token abc")
	rr = httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *APITestSuite) Test_ProfileUpdate_AllowListOnly() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/profile/update", token, gin.H{
		"theme":           "purple",
		"notAllowedField": "x",
		"username":        "hijacked",
	})
	s.Equal(http.StatusOK, rr.Code)

	var p ProfileDTO
	s.NoError(json.Unmarshal(env.Data, &p))
	s.Equal("purple", p.Theme)
	s.Equal("jdoe", p.Username, "username is not updatable")

	// fields left out of a later partial update stay untouched
	rr, env = s.do(http.MethodPost, "/profile/update", token, gin.H{
		"bio": "hello",
	})
	s.Equal(http.StatusOK, rr.Code)
	s.NoError(json.Unmarshal(env.Data, &p))
	s.Equal("hello", p.Bio)
	s.Equal("purple", p.Theme)
}

func (s *APITestSuite) Test_ProfileUpdate_InvalidTheme() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/profile/update", token, gin.H{
		"theme": "neon",
	})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.False(env.Success)
}

func (s *APITestSuite) Test_ProfileUpdate_SanitizesSocialLinks() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/profile/update", token, gin.H{
		"socialLinks": gin.H{
			"github":   "https://github.com/jdoe",
			"linkedin": "javascript:alert(1)",
			"myspace":  "https://myspace.com/jdoe",
		},
	})
	s.Equal(http.StatusOK, rr.Code)

	var p ProfileDTO
	s.NoError(json.Unmarshal(env.Data, &p))
	s.Equal("https://github.com/jdoe", p.SocialLinks["github"])
	s.Equal("", p.SocialLinks["linkedin"])
	_, hasMyspace := p.SocialLinks["myspace"]
	s.False(hasMyspace)
}

func (s *APITestSuite) Test_Sections_CreateListOrder() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type": "projects", "title": "Projects",
	})
	s.Equal(http.StatusOK, rr.Code)
	var first SectionDTO
	s.NoError(json.Unmarshal(env.Data, &first))
	s.True(first.Visible)
	s.Empty(first.Items)

	rr, _ = s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type": "skills", "title": "Skills",
	})
	s.Equal(http.StatusOK, rr.Code)

	rr, env = s.do(http.MethodGet, "/sections/list", token, nil)
	s.Equal(http.StatusOK, rr.Code)
	var listed []SectionDTO
	s.NoError(json.Unmarshal(env.Data, &listed))
	s.Len(listed, 2)
	s.Equal("Projects", listed[0].Title)
	s.Equal("Skills", listed[1].Title)
}

func (s *APITestSuite) Test_Sections_CreateValidation() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, _ := s.do(http.MethodPost, "/sections/create", token, gin.H{"type": "projects"})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr, _ = s.do(http.MethodPost, "/sections/create", token, gin.H{"title": "Projects"})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr, _ = s.do(http.MethodPost, "/sections/create", token, gin.H{"type": "hobbies", "title": "Hobbies"})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr, _ = s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type": "projects", "title": "Projects", "items": "not-an-array",
	})
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *APITestSuite) Test_Sections_UpdateReplacesItems() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type":  "projects",
		"title": "Projects",
		"items": []gin.H{{"title": "Old Project"}},
	})
	s.Equal(http.StatusOK, rr.Code)
	var created SectionDTO
	s.NoError(json.Unmarshal(env.Data, &created))
	s.Len(created.Items, 1)

	rr, env = s.do(http.MethodPatch, "/sections/update", token, gin.H{
		"id": created.ID,
		"items": []gin.H{
			{"title": "Old Project"},
			{"title": "New Project", "technologies": []string{"go", "postgres"}},
		},
	})
	s.Equal(http.StatusOK, rr.Code)

	var updated SectionDTO
	s.NoError(json.Unmarshal(env.Data, &updated))
	s.Len(updated.Items, 2)
	s.Equal("Old Project", updated.Items[0].Title)
	s.Equal("New Project", updated.Items[1].Title)
	s.Equal([]string{"go", "postgres"}, updated.Items[1].Technologies)

	// items absent from the body leaves the sequence alone
	newTitle := "Renamed"
	rr, env = s.do(http.MethodPatch, "/sections/update", token, gin.H{
		"id": created.ID, "title": newTitle,
	})
	s.Equal(http.StatusOK, rr.Code)
	s.NoError(json.Unmarshal(env.Data, &updated))
	s.Equal("Renamed", updated.Title)
	s.Len(updated.Items, 2)
}

func (s *APITestSuite) Test_Sections_UpdateOtherOwnerIsNotFound() {
	ownerToken := s.signupAndLogin("jdoe", "j@d.com", "secret1")
	otherToken := s.signupAndLogin("intruder", "i@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/sections/create", ownerToken, gin.H{
		"type": "projects", "title": "Projects",
	})
	s.Equal(http.StatusOK, rr.Code)
	var created SectionDTO
	s.NoError(json.Unmarshal(env.Data, &created))

	rr, env = s.do(http.MethodPatch, "/sections/update", otherToken, gin.H{
		"id": created.ID, "items": []gin.H{{"title": "stolen"}},
	})
	s.Equal(http.StatusNotFound, rr.Code)
	s.False(env.Success)

	rr, _ = s.do(http.MethodDelete, "/sections/delete?id="+created.ID, otherToken, nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_Sections_UpdateValidation() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, _ := s.do(http.MethodPatch, "/sections/update", token, gin.H{})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr, _ = s.do(http.MethodPatch, "/sections/update", token, gin.H{"id": "not-a-uuid"})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr, _ = s.do(http.MethodPatch, "/sections/update", token, gin.H{
		"id": uuid.NewString(), "items": "not-an-array",
	})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr, _ = s.do(http.MethodPatch, "/sections/update", token, gin.H{"id": uuid.NewString()})
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_Sections_Delete() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type": "education", "title": "Education",
	})
	s.Equal(http.StatusOK, rr.Code)
	var created SectionDTO
	s.NoError(json.Unmarshal(env.Data, &created))

	rr, env = s.do(http.MethodDelete, "/sections/delete?id="+created.ID, token, nil)
	s.Equal(http.StatusOK, rr.Code)
	var deleted SectionSummaryDTO
	s.NoError(json.Unmarshal(env.Data, &deleted))
	s.Equal(created.ID, deleted.ID)
	s.Equal("Education", deleted.Title)

	rr, env = s.do(http.MethodGet, "/sections/list", token, nil)
	s.Equal(http.StatusOK, rr.Code)
	var listed []SectionDTO
	s.NoError(json.Unmarshal(env.Data, &listed))
	s.Empty(listed)

	rr, _ = s.do(http.MethodDelete, "/sections/delete", token, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *APITestSuite) Test_PublicPortfolio() {
	token := s.signupAndLogin("jdoe", "j@d.com", "secret1")

	rr, env := s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type": "projects", "title": "Visible Section",
	})
	s.Equal(http.StatusOK, rr.Code)

	rr, env = s.do(http.MethodPost, "/sections/create", token, gin.H{
		"type": "custom", "title": "Hidden Section",
	})
	s.Equal(http.StatusOK, rr.Code)
	var hidden SectionDTO
	s.NoError(json.Unmarshal(env.Data, &hidden))

	visible := false
	rr, _ = s.do(http.MethodPatch, "/sections/update", token, gin.H{
		"id": hidden.ID, "visible": visible,
	})
	s.Equal(http.StatusOK, rr.Code)

	// no auth header: the portfolio is public
	req := httptest.NewRequest(http.MethodGet, "/profile/jdoe", nil)
	rr = httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusOK, rr.Code)

	var pubEnv envelope
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &pubEnv))
	var pub PortfolioDTO
	s.NoError(json.Unmarshal(pubEnv.Data, &pub))
	s.Equal("jdoe", pub.Profile.Username)
	s.Len(pub.Sections, 1)
	s.Equal("Visible Section", pub.Sections[0].Title)

	req = httptest.NewRequest(http.MethodGet, "/profile/nobody", nil)
	rr = httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusNotFound, rr.Code)
}
