package github

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContentClient fetches raw files from participant repositories. Used
// best-effort only: callers absorb any error it returns.
type ContentClient struct {
	httpClient *http.Client
	baseURL    string
	repo       string
}

func NewContentClient(baseURL, repo string) *ContentClient {
	return &ContentClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		repo:       repo,
	}
}

// FetchReadme downloads the README of a submission folder from the pushed branch.
func (c *ContentClient) FetchReadme(username, branch, folder string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s/README.md", c.baseURL, username, c.repo, branch, folder)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	return string(data), nil
}
