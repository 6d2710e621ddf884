package services

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RepoValidator answers yes/no questions about a GitHub repository. Treated
// as a black box by the submission flow.
type RepoValidator interface {
	IsPublic(ctx context.Context, owner, repo string) (bool, error)
	HasFile(ctx context.Context, owner, repo, path string) (bool, error)
}

type githubValidator struct {
	client  *http.Client
	baseURL string
	token   string // optional, raises the API rate limit
}

func NewGitHubValidator(token string) RepoValidator {
	return &githubValidator{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.github.com",
		token:   token,
	}
}

func (g *githubValidator) IsPublic(ctx context.Context, owner, repo string) (bool, error) {
	status, err := g.head(ctx, fmt.Sprintf("%s/repos/%s/%s", g.baseURL, owner, repo))
	if err != nil {
		return false, err
	}
	// Private repos read as 404 without credentials.
	return status == http.StatusOK, nil
}

func (g *githubValidator) HasFile(ctx context.Context, owner, repo, path string) (bool, error) {
	status, err := g.head(ctx, fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.baseURL, owner, repo, path))
	if err != nil {
		return false, err
	}
	return status == http.StatusOK, nil
}

func (g *githubValidator) head(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
