package shared

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/dto"
)

// ConvertStringToBool parses a form value, false when absent or unparseable.
func ConvertStringToBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate slices one page out of an in-memory list. The backend endpoints
// return full lists, so paging happens here after filtering.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 || page <= 0 {
		return items
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// MatchesSearch reports whether any candidate field contains the search term,
// case-insensitively. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == constant.Empty {
		return true
	}

	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams) string {
	return fmt.Sprintf("%s:%d:%d:%s:%s:%s", prefix, params.Page, params.Limit, params.Search, params.SortBy, params.SortDir)
}

// InvalidateCaches clears every cached entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
