package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentacar/shared"
	"rentacar/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 21, limit: 10, want: 3},
		{name: "empty list", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, shared.Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, shared.Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, shared.Paginate(items, 3, 2))
	assert.Empty(t, shared.Paginate(items, 4, 2))
	assert.Equal(t, items, shared.Paginate(items, 0, 0))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, shared.MatchesSearch("", "anything"))
	assert.True(t, shared.MatchesSearch("corol", "Toyota", "Corolla"))
	assert.True(t, shared.MatchesSearch("A123", "a123bc"))
	assert.False(t, shared.MatchesSearch("bmw", "Toyota", "Corolla"))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "vehiculo:get:42", shared.BuildCacheKey("vehiculo", "get", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	key := shared.BuildCacheKeyWithQuery("vehiculo:gets", dto.QueryParams{Page: 2, Limit: 10, Search: "suv"})

	assert.Equal(t, "vehiculo:gets:2:10:suv::", key)
}
