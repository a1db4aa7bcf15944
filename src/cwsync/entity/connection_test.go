package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "already canonical",
			raw:  "http://localhost:9090",
			want: "http://localhost:9090",
		},
		{
			name: "upper case scheme and host",
			raw:  "HTTP://LocalHost:9090",
			want: "http://localhost:9090",
		},
		{
			name: "trailing slash dropped",
			raw:  "http://localhost:9090/",
			want: "http://localhost:9090",
		},
		{
			name: "query and fragment dropped",
			raw:  "https://codewind.example.com/workspace?tab=1#top",
			want: "https://codewind.example.com/workspace",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  http://localhost:9090 ",
			want: "http://localhost:9090",
		},
		{
			name:    "non http scheme rejected",
			raw:     "ftp://localhost:9090",
			wantErr: true,
		},
		{
			name:    "missing host rejected",
			raw:     "http://",
			wantErr: true,
		},
		{
			name:    "garbage rejected",
			raw:     "not a url",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURLCollisions(t *testing.T) {
	a, err := NormalizeURL("http://LOCALHOST:9090/")
	require.NoError(t, err)
	b, err := NormalizeURL("http://localhost:9090")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTreeItemLabel(t *testing.T) {
	t.Run("connection item", func(t *testing.T) {
		item := TreeItem{
			Kind:       TreeItemConnection,
			Connection: &ConnectionInfo{URL: "http://localhost:9090"},
		}
		assert.Equal(t, "http://localhost:9090", item.Label())
	})

	t.Run("project item", func(t *testing.T) {
		p := NewProject("id1", "myproject", nil)
		p.Update(&StatusSnapshot{AppStatus: "started"})
		item := TreeItem{Kind: TreeItemProject, Project: p}
		assert.Equal(t, "myproject [Started]", item.Label())
	})

	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, "", TreeItem{}.Label())
	})
}
