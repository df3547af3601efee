package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/grezzle/goblin-closet/internal/domain"
)

const githubUserEndpoint = "https://api.github.com/user"

// GithubGateway performs the OAuth code exchange and profile fetch against
// GitHub. It is the only place that sees the provider's raw numeric account
// id; everything downstream gets the canonical decimal string.
type GithubGateway struct {
	conf    *oauth2.Config
	timeout time.Duration
}

func NewGithubGateway(clientID, clientSecret, redirectURL string) *GithubGateway {
	return &GithubGateway{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     githuboauth.Endpoint,
		},
		timeout: 10 * time.Second,
	}
}

func (g *GithubGateway) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

func (g *GithubGateway) Exchange(ctx context.Context, code string) (domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return domain.Identity{}, errors.Wrap(err, "oauth code exchange failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, githubUserEndpoint, nil)
	if err != nil {
		return domain.Identity{}, errors.Wrap(err, "profile request build failed")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.conf.Client(ctx, token).Do(req)
	if err != nil {
		return domain.Identity{}, errors.Wrap(err, "profile fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Identity{}, fmt.Errorf("profile fetch returned status %d", resp.StatusCode)
	}

	var profile struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return domain.Identity{}, errors.Wrap(err, "profile decode failed")
	}

	name := profile.Name
	if name == "" {
		name = profile.Login
	}

	return domain.Identity{
		ExternalID:  strconv.FormatInt(profile.ID, 10),
		DisplayName: name,
		AvatarURL:   profile.AvatarURL,
	}, nil
}
