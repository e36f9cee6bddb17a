package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type cartKeyer interface {
	CartKey(userID string) string
}

// Store persists cart documents in Redis keyed by user. Carts expire after
// the configured TTL so abandoned sessions clean themselves up.
type Store struct {
	kv    kvStore
	keyer cartKeyer
	ttl   time.Duration
}

func NewStore(kv kvStore, keyer cartKeyer, ttl time.Duration) *Store {
	return &Store{kv: kv, keyer: keyer, ttl: ttl}
}

// Load returns the user's cart, or an empty cart when none is stored.
func (s *Store) Load(ctx context.Context, userID string) (Cart, error) {
	raw, err := s.kv.Get(ctx, s.keyer.CartKey(userID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return Cart{}, nil
		}
		return Cart{}, fmt.Errorf("loading cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return Cart{}, fmt.Errorf("decoding cart: %w", err)
	}
	return cart, nil
}

// Save writes the cart document, refreshing its TTL.
func (s *Store) Save(ctx context.Context, userID string, cart Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.keyer.CartKey(userID), string(raw), s.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// Clear deletes the user's cart document.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.kv.Del(ctx, s.keyer.CartKey(userID)); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
