package pagination_test

import (
	"testing"

	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"both valid", "2", "10", 2, 10},
		{"defaults on empty", "", "", 1, 25},
		{"garbage page", "abc", "10", 1, 10},
		{"zero page", "0", "10", 1, 10},
		{"negative limit", "1", "-5", 1, 25},
		{"limit clamped", "1", "5000", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Parse(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 6, Limit: 10}.Offset())
}
