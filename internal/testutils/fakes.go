package testutils

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/pubsub"
)

// FakeCardAPI is an in-memory stand-in for the remote card endpoints. UserID
// plays the token holder: it owns created cards and is the one liking.
type FakeCardAPI struct {
	cards     map[string]domain.Card
	order     []string
	ListCalls int
	MyCalls   int
	Deleted   map[string]int64
	NextID    int
	UserID    string
	Err       error
}

// NewFakeCardAPI creates a FakeCardAPI holding cards in list order.
func NewFakeCardAPI(userID string, cards ...domain.Card) *FakeCardAPI {
	f := &FakeCardAPI{cards: map[string]domain.Card{}, Deleted: map[string]int64{}, UserID: userID}
	for _, c := range cards {
		f.cards[c.ID] = c
		f.order = append(f.order, c.ID)
	}
	return f
}

func (f *FakeCardAPI) ListCards(ctx context.Context) ([]domain.Card, error) {
	f.ListCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]domain.Card, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.cards[id])
	}
	return out, nil
}

func (f *FakeCardAPI) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *FakeCardAPI) MyCards(ctx context.Context) ([]domain.Card, error) {
	f.MyCalls++
	var out []domain.Card
	for _, id := range f.order {
		if f.cards[id].UserID == f.UserID {
			out = append(out, f.cards[id])
		}
	}
	return out, nil
}

func (f *FakeCardAPI) CreateCard(ctx context.Context, in domain.CardInput) (*domain.Card, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.NextID++
	c := domain.Card{ID: "new-" + strconv.Itoa(f.NextID), Title: in.Title, UserID: f.UserID, BizNumber: 1000000 + int64(f.NextID)}
	f.cards[c.ID] = c
	f.order = append([]string{c.ID}, f.order...)
	return &c, nil
}

func (f *FakeCardAPI) UpdateCard(ctx context.Context, id string, in domain.CardInput) (*domain.Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Title = in.Title
	f.cards[id] = c
	return &c, nil
}

func (f *FakeCardAPI) ToggleLike(ctx context.Context, id string) (*domain.Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if i := slices.Index(c.Likes, f.UserID); i >= 0 {
		c.Likes = slices.Delete(slices.Clone(c.Likes), i, i+1)
	} else {
		c.Likes = append(slices.Clone(c.Likes), f.UserID)
	}
	f.cards[id] = c
	return &c, nil
}

func (f *FakeCardAPI) DeleteCard(ctx context.Context, id string, bizNumber int64) error {
	if _, ok := f.cards[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.cards, id)
	f.order = slices.DeleteFunc(f.order, func(s string) bool { return s == id })
	f.Deleted[id] = bizNumber
	return nil
}

// FakeUserAPI is an in-memory stand-in for the remote user endpoints.
type FakeUserAPI struct {
	Users   map[string]domain.User
	Deleted []string
	Token   string
	Err     error
}

// NewFakeUserAPI creates a FakeUserAPI whose logins hand out Token.
func NewFakeUserAPI(users ...domain.User) *FakeUserAPI {
	f := &FakeUserAPI{Users: map[string]domain.User{}, Token: "tok"}
	for _, u := range users {
		f.Users[u.ID] = u
	}
	return f
}

func (f *FakeUserAPI) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Token, nil
}

func (f *FakeUserAPI) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Token, nil
}

func (f *FakeUserAPI) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *FakeUserAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.Users))
	for _, u := range f.Users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b domain.User) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (f *FakeUserAPI) UpdateUser(ctx context.Context, id string, in domain.ProfileInput) (*domain.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name = in.Name
	u.Phone = in.Phone
	f.Users[id] = u
	return &u, nil
}

func (f *FakeUserAPI) ToggleBusiness(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.IsBusiness = !u.IsBusiness
	f.Users[id] = u
	return &u, nil
}

func (f *FakeUserAPI) DeleteUser(ctx context.Context, id string) error {
	if _, ok := f.Users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.Users, id)
	f.Deleted = append(f.Deleted, id)
	return nil
}

// RecordingPublisher captures published messages.
type RecordingPublisher struct {
	mu       sync.Mutex
	Messages []pubsub.Message
}

func (p *RecordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Messages = append(p.Messages, msg)
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

func (p *RecordingPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.Messages))
	for _, m := range p.Messages {
		out = append(out, m.Topic)
	}
	return out
}
