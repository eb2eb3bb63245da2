package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	ProfileKeyPrefix     = "profile:%d"
	SuggestionsKeyPrefix = "suggestions:%d"
)

const (
	UserTTL        = 5 * time.Minute
	ProfileTTL     = 10 * time.Minute
	SuggestionsTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func SuggestionsKey(userID uint) string {
	return fmt.Sprintf(SuggestionsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProfileKey(userID))
}

// InvalidateSuggestions drops the cached suggestion list for both sides of a
// connection change.
func InvalidateSuggestions(ctx context.Context, userIDs ...uint) {
	for _, id := range userIDs {
		Invalidate(ctx, SuggestionsKey(id))
	}
}
