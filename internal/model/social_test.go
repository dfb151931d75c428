package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialNetworkURLs(t *testing.T) {
	tests := []struct {
		network  string
		username string
		want     string
	}{
		{"LinkedIn", "yourusername", "https://linkedin.com/in/yourusername"},
		{"GitHub", "octocat", "https://github.com/octocat"},
		{"Instagram", "someone", "https://instagram.com/someone"},
		{"Orcid", "0000-0002-1825-0097", "https://orcid.org/0000-0002-1825-0097"},
		{"Mastodon", "@alice@example.social", "https://mastodon.social/@alice@example.social"},
		{"Twitter", "someone", "https://twitter.com/someone"},
	}
	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			n := &SocialNetwork{Network: tt.network, Username: tt.username}
			require.NoError(t, n.Validate())
			assert.Equal(t, tt.want, n.URL())
		})
	}
}

func TestSocialNetworkUnknownNetwork(t *testing.T) {
	n := &SocialNetwork{Network: "Friendster", Username: "someone"}
	err := n.Validate()
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "network", fieldErr.Path)
}

func TestMastodonUsernameRules(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"missing leading at", "alice", true},
		{"missing domain", "@alice", true},
		{"valid", "@alice@example.social", false},
		{"too many ats", "@alice@example@social", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &SocialNetwork{Network: "Mastodon", Username: tt.username}
			err := n.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrMastodonFormat)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "username", fieldErr.Path)
			assert.Equal(t, tt.username, fieldErr.Value)
		})
	}
}
