package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  uint64
	}{
		{name: "first page", page: 1, size: 20, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: 3, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "invalid page defaults to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "oversized page size clamped", page: 1, size: 1000, wantOffset: 0, wantLimit: DefaultPageSize},
		{name: "non-positive size clamped", page: 2, size: 0, wantOffset: 20, wantLimit: DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(45), info.TotalItems)

	// Empty result set still reports one page when on page 1.
	info = NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, info.TotalPages)

	// Current page never exceeds total pages.
	info = NewPaginationInfo(5, 9, 20)
	assert.Equal(t, 1, info.CurrentPage)
}
