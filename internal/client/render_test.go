package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-user-keeper/models"
)

func TestPageSummary(t *testing.T) {
	tests := []struct {
		name string
		page models.UserPage
		want string
	}{
		{
			name: "single page",
			page: models.UserPage{PageNum: 1, PageTotal: 1, Count: 2, Total: 2},
			want: "page 1 of 1 · 2 of 2 users",
		},
		{
			name: "middle page",
			page: models.UserPage{PageNum: 2, PageTotal: 3, Count: 10, Total: 25, HasPreviousPage: true, HasNextPage: true},
			want: "page 2 of 3 · 10 of 25 users · prev: --page 1 · next: --page 3",
		},
		{
			name: "empty",
			page: models.UserPage{PageNum: 1},
			want: "page 1 of 0 · 0 of 0 users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageSummary(tt.page))
		})
	}
}

func TestRenderUser_HasOneLinePerField(t *testing.T) {
	out := renderUser(models.User{ID: "u1", Name: "Alice", Email: "a@x.com"})

	for _, header := range userHeaders {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "Alice")
	assert.Equal(t, 2, strings.Count(out, "-"), "zero timestamps render as a dash")
}
