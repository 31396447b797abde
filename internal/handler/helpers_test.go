package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"visionflow/internal/domain/contact"
	"visionflow/internal/domain/favorite"
	"visionflow/internal/domain/user"
	"visionflow/internal/domain/waitlist"
	"visionflow/internal/middleware"
	"visionflow/internal/services"
	vferrors "visionflow/pkg/errors"
	"visionflow/pkg/logger"

	"github.com/gin-gonic/gin"
)

type fakeChecker struct {
	deliverable bool
	err         error
	calls       int
}

func (f *fakeChecker) Check(ctx context.Context, email string) (bool, error) {
	f.calls++
	return f.deliverable, f.err
}

type fakeAI struct {
	enabled    bool
	reply      string
	imageURL   string
	chatCalls  int
	imageCalls int
}

func (f *fakeAI) Enabled() bool { return f.enabled }

func (f *fakeAI) ChatCompletion(ctx context.Context, model, systemPrompt, userMessage string) (string, error) {
	f.chatCalls++
	return f.reply, nil
}

func (f *fakeAI) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.imageCalls++
	return f.imageURL, nil
}

type fakeQuota struct {
	allowed bool
}

func (f *fakeQuota) Allow(ctx context.Context, email string, limit int) (bool, error) {
	return f.allowed, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := f.users[u.Email]; ok {
		return vferrors.ErrUserExists
	}
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, vferrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakeFavoriteRepo struct {
	favorites []favorite.Favorite
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, fav *favorite.Favorite) error {
	f.favorites = append(f.favorites, *fav)
	return nil
}

func (f *fakeFavoriteRepo) ListByEmail(ctx context.Context, email string) ([]favorite.Favorite, error) {
	var out []favorite.Favorite
	for _, fav := range f.favorites {
		if fav.Email == email {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) DeleteByEmailAndQuestion(ctx context.Context, email, question string) error {
	kept := f.favorites[:0]
	for _, fav := range f.favorites {
		if !(fav.Email == email && fav.Question == question) {
			kept = append(kept, fav)
		}
	}
	f.favorites = kept
	return nil
}

func (f *fakeFavoriteRepo) DeleteByEmail(ctx context.Context, email string) error {
	kept := f.favorites[:0]
	for _, fav := range f.favorites {
		if fav.Email != email {
			kept = append(kept, fav)
		}
	}
	f.favorites = kept
	return nil
}

type fakeContactRepo struct {
	submissions []contact.Submission
}

func (f *fakeContactRepo) Create(ctx context.Context, s *contact.Submission) error {
	f.submissions = append(f.submissions, *s)
	return nil
}

type fakeWaitlistRepo struct {
	emails []string
}

func (f *fakeWaitlistRepo) Create(ctx context.Context, e *waitlist.Entry) error {
	f.emails = append(f.emails, e.Email)
	return nil
}

// testEnv bundles the fakes behind a fully routed engine.
type testEnv struct {
	engine   *gin.Engine
	checker  *fakeChecker
	ai       *fakeAI
	quota    *fakeQuota
	users    *fakeUserRepo
	contacts *fakeContactRepo
	waitlist *fakeWaitlistRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := logger.New(logger.DevelopmentMode)
	env := &testEnv{
		checker:  &fakeChecker{deliverable: true},
		ai:       &fakeAI{enabled: true, reply: "a reply", imageURL: "https://img.example/logo.png"},
		quota:    &fakeQuota{allowed: true},
		users:    newFakeUserRepo(),
		contacts: &fakeContactRepo{},
		waitlist: &fakeWaitlistRepo{},
	}

	authService := services.NewAuthService(env.users, env.checker, l)
	logoService := services.NewLogoService(env.ai, l)
	chatService := services.NewChatService(env.ai, logoService, env.quota, l, "gpt-3.5-turbo", 5)
	favoritesService := services.NewFavoritesService(&fakeFavoriteRepo{})
	contactService := services.NewContactService(env.contacts, env.checker, l)
	waitlistService := services.NewWaitlistService(env.waitlist)

	auth := NewAuthHandler(authService)
	chat := NewChatHandler(chatService)
	favorites := NewFavoritesHandler(favoritesService)
	contactHandler := NewContactHandler(contactService, waitlistService, l)

	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.POST("/add-waitlist", contactHandler.AddWaitlist)
	engine.POST("/register", auth.Register)
	engine.POST("/login", auth.Login)
	engine.POST("/chat", chat.Chat)
	engine.POST("/save-favorite", favorites.Save)
	engine.POST("/favorites", favorites.List)
	engine.POST("/delete-favorite", favorites.Delete)
	engine.POST("/clear-favorites", favorites.Clear)
	engine.POST("/send-message", contactHandler.SendMessage)

	env.engine = engine
	return env
}

func (e *testEnv) post(t *testing.T, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}
