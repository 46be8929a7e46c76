package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GitHubProject — работа, импортированная из публичного репозитория GitHub,
// в форме, готовой к добавлению в портфолио.
type GitHubProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RepoLink    string `json:"repoLink"`
	LiveDemo    string `json:"liveDemo"`
	Image       string `json:"image"`
}

// githubRepo — подмножество полей ответа GitHub API.
type githubRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Homepage    string `json:"homepage"`
}

// GitHubService импортирует публичные репозитории пользователя GitHub.
type GitHubService struct {
	baseURL string
	client  *http.Client
}

// NewGitHubService создаёт клиента GitHub API.
func NewGitHubService(baseURL string) *GitHubService {
	return &GitHubService{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchUserProjects возвращает публичные репозитории пользователя,
// отображённые в форму проектов портфолио.
func (s *GitHubService) FetchUserProjects(ctx context.Context, username string) ([]GitHubProject, error) {
	url := fmt.Sprintf("%s/users/%s/repos", s.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github service: создание запроса: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github service: запрос к GitHub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github service: GitHub вернул статус %d", resp.StatusCode)
	}

	var repos []githubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github service: разбор ответа: %w", err)
	}

	projects := make([]GitHubProject, 0, len(repos))
	for _, repo := range repos {
		projects = append(projects, mapGitHubRepo(username, repo))
	}

	return projects, nil
}

// mapGitHubRepo отображает репозиторий в форму проекта портфолио.
// Картинкой служит OpenGraph-карточка репозитория.
func mapGitHubRepo(username string, repo githubRepo) GitHubProject {
	description := repo.Description
	if description == "" {
		description = "No description available"
	}

	return GitHubProject{
		Title:       repo.Name,
		Description: description,
		RepoLink:    repo.HTMLURL,
		LiveDemo:    repo.Homepage,
		Image:       fmt.Sprintf("https://opengraph.githubassets.com/1/%s/%s", username, repo.Name),
	}
}
