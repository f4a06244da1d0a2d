package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/shiftcoach/shiftcoach/internal/bus"
)

// responseCache memoizes per-user JSON responses for the read endpoints.
// Any rota or sleep write for a user evicts every entry under that user, so
// a projection can never outlive the window or sessions it was derived from.
type responseCache struct {
	store *gocache.Cache
}

func newResponseCache(ttl time.Duration, events *bus.Bus) *responseCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	cache := &responseCache{
		store: gocache.New(ttl, 2*ttl),
	}
	if events != nil {
		events.Subscribe(bus.TopicRotaSaved, cache.onInvalidate)
		events.Subscribe(bus.TopicRotaCleared, cache.onInvalidate)
		events.Subscribe(bus.TopicSleepChanged, cache.onInvalidate)
	}
	return cache
}

func (cache *responseCache) onInvalidate(event bus.Event) {
	cache.EvictUser(event.UserID)
}

func (cache *responseCache) EvictUser(userID uint) {
	prefix := strconv.FormatUint(uint64(userID), 10) + "|"
	for key := range cache.store.Items() {
		if strings.HasPrefix(key, prefix) {
			cache.store.Delete(key)
		}
	}
}

func cacheKey(userID uint, c *fiber.Ctx) string {
	return strconv.FormatUint(uint64(userID), 10) + "|" + c.Path() + "?" + string(c.Request().URI().QueryString())
}

// CacheRead serves a stored copy of a GET response when one exists, and
// stores successful responses on the way out.
func (handler *Handler) CacheRead(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || handler.responseCache == nil {
		return c.Next()
	}

	key := cacheKey(user.ID, c)
	if cached, found := handler.responseCache.store.Get(key); found {
		body, ok := cached.([]byte)
		if ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}
	}

	if err := c.Next(); err != nil {
		return err
	}

	if c.Response().StatusCode() == fiber.StatusOK {
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())
		handler.responseCache.store.SetDefault(key, body)
	}
	return nil
}
