package model

import (
	"net/url"
	"strings"
	"sync"
)

// networkBaseURLs maps each supported network to the base its profile URLs
// are built from.
var networkBaseURLs = map[string]string{
	"LinkedIn":  "https://linkedin.com/in/",
	"GitHub":    "https://github.com/",
	"Instagram": "https://instagram.com/",
	"Orcid":     "https://orcid.org/",
	"Mastodon":  "https://mastodon.social/",
	"Twitter":   "https://twitter.com/",
}

// SocialNetwork is a network/username pair with a derived profile URL.
type SocialNetwork struct {
	Network  string `json:"network"`
	Username string `json:"username"`

	urlOnce sync.Once
	url     string
}

// Validate checks the network against the fixed enumeration, applies the
// Mastodon username rules, and verifies the derived URL is a well-formed
// absolute URL.
func (s *SocialNetwork) Validate() error {
	if _, ok := networkBaseURLs[s.Network]; !ok {
		return newFieldError(ErrInvalidField, "network", s.Network,
			"the social network should be one of LinkedIn, GitHub, Instagram, Orcid, Mastodon, or Twitter")
	}
	if s.Network == "Mastodon" {
		if !strings.HasPrefix(s.Username, "@") {
			return newFieldError(ErrMastodonFormat, "username", s.Username,
				"Mastodon username should start with '@'!")
		}
		if strings.Count(s.Username, "@") != 2 {
			return newFieldError(ErrMastodonFormat, "username", s.Username,
				"Mastodon username should contain exactly two '@' characters!")
		}
	}
	u, err := url.Parse(s.URL())
	if err != nil || !u.IsAbs() || u.Host == "" {
		return newFieldError(ErrInvalidNetworkURL, "username", s.Username,
			"the derived profile URL is not a valid URL")
	}
	return nil
}

// URL derives the canonical profile URL from the network's base URL and the
// username. Computed once per instance.
func (s *SocialNetwork) URL() string {
	s.urlOnce.Do(func() {
		s.url = networkBaseURLs[s.Network] + s.Username
	})
	return s.url
}
