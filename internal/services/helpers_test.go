package services

import (
	"context"
	"errors"

	"visionflow/internal/domain/contact"
	"visionflow/internal/domain/favorite"
	"visionflow/internal/domain/user"
	vferrors "visionflow/pkg/errors"
	"visionflow/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.DevelopmentMode)
}

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
	chatErr    error
	imageErr   error
	chatCalls  int
	imageCalls int

	lastModel  string
	lastPrompt string
}

func (f *fakeAI) Enabled() bool { return f.enabled }

func (f *fakeAI) ChatCompletion(ctx context.Context, model, systemPrompt, userMessage string) (string, error) {
	f.chatCalls++
	f.lastModel = model
	f.lastPrompt = systemPrompt
	return f.reply, f.chatErr
}

func (f *fakeAI) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.imageCalls++
	f.lastPrompt = prompt
	return f.imageURL, f.imageErr
}

type fakeQuota struct {
	allowed bool
	err     error
	calls   int
}

func (f *fakeQuota) Allow(ctx context.Context, email string, limit int) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

type fakeUserRepo struct {
	users      map[string]user.User
	createErr  error
	existsErr  error
	lookups    int
	creates    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Email]; ok {
		return vferrors.ErrUserExists
	}
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	f.lookups++
	u, ok := f.users[email]
	if !ok {
		return user.User{}, vferrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.lookups++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.users[email]
	return ok, nil
}

type fakeFavoriteRepo struct {
	favorites []favorite.Favorite
	err       error
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, fav *favorite.Favorite) error {
	if f.err != nil {
		return f.err
	}
	f.favorites = append(f.favorites, *fav)
	return nil
}

func (f *fakeFavoriteRepo) ListByEmail(ctx context.Context, email string) ([]favorite.Favorite, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []favorite.Favorite
	for _, fav := range f.favorites {
		if fav.Email == email {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) DeleteByEmailAndQuestion(ctx context.Context, email, question string) error {
	if f.err != nil {
		return f.err
	}
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
	if f.err != nil {
		return f.err
	}
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
	err         error
}

func (f *fakeContactRepo) Create(ctx context.Context, s *contact.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.submissions = append(f.submissions, *s)
	return nil
}

var errBoom = errors.New("boom")
