// Package doi checks publication identifiers against the DOI System.
package doi

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound reports that the identifier does not exist in the DOI System.
// Any other failure of a lookup is a transport error and is returned as is.
var ErrNotFound = errors.New("doi not found")

// Client resolves DOIs against a registry endpoint.
type Client struct {
	BaseURL string
	http    *http.Client
}

// NewClient returns a client for the public DOI System. Certificate
// verification is disabled for this client only; the doi.org redirect chain
// crosses hosts with inconsistent certificates and the lookup is a pure
// existence probe. Global TLS state is never touched.
func NewClient() *Client {
	return &Client{
		BaseURL: "https://doi.org/",
		http: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Exists probes the registry for the given identifier. A 404 maps to
// ErrNotFound; other HTTP statuses are accepted as existence.
func (c *Client) Exists(doi string) error {
	resp, err := c.http.Get(c.BaseURL + doi)
	if err != nil {
		return fmt.Errorf("doi lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
