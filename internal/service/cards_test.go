package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nfrund/bcard/internal/cache"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/pubsub"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	anonymous = domain.Anonymous
	regular   = domain.Session{IsAuthenticated: true, Claims: domain.Claims{UserID: "u1"}}
	business  = domain.Session{IsAuthenticated: true, Claims: domain.Claims{UserID: "biz", IsBusiness: true}}
	admin     = domain.Session{IsAuthenticated: true, Claims: domain.Claims{UserID: "root", IsAdmin: true}}
)

func setupCards(t *testing.T, userID string, clock clockwork.Clock) (*service.Cards, *testutils.FakeCardAPI, *testutils.RecordingPublisher) {
	t.Helper()
	api := testutils.NewFakeCardAPI(userID,
		domain.Card{ID: "c1", Title: "Blue Bakery", UserID: "biz", BizNumber: 1111111},
		domain.Card{ID: "c2", Title: "Green Garage", UserID: "other", BizNumber: 2222222, Likes: []string{"u1"}},
	)
	lists := cache.NewMemory(clock, 30*time.Second)
	pub := &testutils.RecordingPublisher{}
	return service.NewCards(api, lists, pub), api, pub
}

func TestCardsAllReadsThroughTheCache(t *testing.T) {
	clock := clockwork.NewFakeClock()
	svc, api, _ := setupCards(t, "u1", clock)
	ctx := context.Background()

	cards, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	_, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.ListCalls, "second read is served from the cache")

	clock.Advance(31 * time.Second)
	_, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.ListCalls, "expired entries are refetched")
}

func TestCardsAllSurfacesAPIErrors(t *testing.T) {
	svc, api, _ := setupCards(t, "u1", clockwork.NewFakeClock())
	api.Err = errors.New("down")

	_, err := svc.All(context.Background())
	assert.Error(t, err)
}

func TestCardsSearchAndFavorites(t *testing.T) {
	svc, _, _ := setupCards(t, "u1", clockwork.NewFakeClock())
	ctx := context.Background()

	found, err := svc.Search(ctx, "GARAGE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "c2", found[0].ID)

	favs, err := svc.Favorites(ctx, regular)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "c2", favs[0].ID)

	_, err = svc.Favorites(ctx, anonymous)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestCardsMineIsGated(t *testing.T) {
	svc, api, _ := setupCards(t, "biz", clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := svc.Mine(ctx, anonymous)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized), "anonymous visitors must log in first")

	_, err = svc.Mine(ctx, regular)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	mine, err := svc.Mine(ctx, business)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "c1", mine[0].ID)

	_, _ = svc.Mine(ctx, business)
	assert.Equal(t, 1, api.MyCalls)
}

func TestCardsCreatePrependsWithoutRefetch(t *testing.T) {
	svc, api, pub := setupCards(t, "biz", clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := svc.All(ctx)
	require.NoError(t, err)
	_, err = svc.Mine(ctx, business)
	require.NoError(t, err)

	created, err := svc.Create(ctx, business, domain.CardInput{Title: "Red Rentals"})
	require.NoError(t, err)

	all, _ := svc.All(ctx)
	mine, _ := svc.Mine(ctx, business)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, created.ID, mine[0].ID)
	assert.Equal(t, 1, api.ListCalls)
	assert.Equal(t, 1, api.MyCalls)
	assert.Equal(t, []string{pubsub.TopicCardCreated}, pub.Topics())

	_, err = svc.Create(ctx, regular, domain.CardInput{Title: "Nope"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestCardsUpdateReplacesCachedCopy(t *testing.T) {
	svc, _, pub := setupCards(t, "biz", clockwork.NewFakeClock())
	ctx := context.Background()
	_, _ = svc.All(ctx)

	_, err := svc.Update(ctx, business, "c1", domain.CardInput{Title: "Blue Bakery & Cafe"})
	require.NoError(t, err)

	all, _ := svc.All(ctx)
	assert.Equal(t, "Blue Bakery & Cafe", all[0].Title)
	assert.Equal(t, []string{pubsub.TopicCardUpdated}, pub.Topics())

	_, err = svc.Update(ctx, business, "c2", domain.CardInput{Title: "Not mine"})
	assert.True(t, errors.Is(err, domain.ErrForbidden), "business users edit only their own cards")

	_, err = svc.Update(ctx, admin, "c2", domain.CardInput{Title: "Admin edit"})
	assert.NoError(t, err, "admins edit any card")
}

func TestCardsDeleteSendsBizNumberAndDropsFromCache(t *testing.T) {
	svc, api, pub := setupCards(t, "root", clockwork.NewFakeClock())
	ctx := context.Background()
	_, _ = svc.All(ctx)

	require.NoError(t, svc.Delete(ctx, admin, "c2"))
	assert.Equal(t, int64(2222222), api.Deleted["c2"])

	all, _ := svc.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, []string{pubsub.TopicCardDeleted}, pub.Topics())

	err := svc.Delete(ctx, regular, "c1")
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	err = svc.Delete(ctx, admin, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCardsToggleLikeTwiceRestoresMembership(t *testing.T) {
	svc, _, pub := setupCards(t, "u1", clockwork.NewFakeClock())
	ctx := context.Background()
	_, _ = svc.All(ctx)

	before, err := svc.Favorites(ctx, regular)
	require.NoError(t, err)

	liked, err := svc.ToggleLike(ctx, regular, "c1")
	require.NoError(t, err)
	assert.True(t, liked.IsLikedBy("u1"))

	mid, _ := svc.Favorites(ctx, regular)
	assert.Len(t, mid, len(before)+1, "cached list reflects the like without refetching")

	unliked, err := svc.ToggleLike(ctx, regular, "c1")
	require.NoError(t, err)
	assert.False(t, unliked.IsLikedBy("u1"))

	after, _ := svc.Favorites(ctx, regular)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{pubsub.TopicCardLiked, pubsub.TopicCardLiked}, pub.Topics())

	_, err = svc.ToggleLike(ctx, anonymous, "c1")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
