package registry

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MaxCandidates caps how many versions are considered per package. The search
// space is the product of per-package candidate counts, so this bound is what
// keeps the trial loop tractable.
const MaxCandidates = 5

// DefaultBaseURL is the public crates.io registry.
const DefaultBaseURL = "https://crates.io"

// Client queries a crates registry for published versions.
type Client struct {
	BaseURL string       // registry root, without trailing slash
	HTTP    *http.Client // defaults to http.DefaultClient
}

// NewClient returns a Client pointed at crates.io.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: http.DefaultClient}
}

// versionsResponse is the subset of the crates.io crate endpoint we rely on.
// Decoding into an explicit shape (instead of poking at raw JSON) lets a
// missing or misshapen field fail with a reportable error.
type versionsResponse struct {
	Versions []struct {
		Num    string `json:"num"`
		Yanked bool   `json:"yanked"`
	} `json:"versions"`
}

// CandidateVersions fetches up to MaxCandidates non-yanked version strings
// for the named package, preserving the registry's own ordering (crates.io
// lists newest publication first). Any network or decoding problem is a hard
// failure for the run: without version data there is nothing to trial.
func (c *Client) CandidateVersions(name string) ([]string, error) {
	url := fmt.Sprintf("%s/api/v1/crates/%s", c.BaseURL, name)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("querying registry for %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned %s for %s", resp.Status, name)
	}

	var body versionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrMalformedResponse, name, err)
	}
	if body.Versions == nil {
		return nil, fmt.Errorf("%w for %s: no versions array", ErrMalformedResponse, name)
	}

	var candidates []string
	for _, v := range body.Versions {
		if v.Yanked {
			continue
		}
		if v.Num == "" {
			return nil, fmt.Errorf("%w for %s: version entry without a number", ErrMalformedResponse, name)
		}
		candidates = append(candidates, v.Num)
		if len(candidates) == MaxCandidates {
			break
		}
	}
	return candidates, nil
}
