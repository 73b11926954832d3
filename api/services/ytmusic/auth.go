package ytmusic

import (
	"context"
	"errors"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"

	"github.com/tunelens/ytmusic-home-api/api/stores/tokenstore"
)

var (
	oauthOnce   sync.Once
	oauthConfig *oauth2.Config
)

func OauthConfig() *oauth2.Config {
	oauthOnce.Do(func() {
		oauthConfig = &oauth2.Config{
			ClientID:     os.Getenv("YOUTUBE_CLIENT_ID"),
			ClientSecret: os.Getenv("YOUTUBE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("YOUTUBE_REDIRECT_URI"),
			Endpoint:     google.Endpoint,
			Scopes:       []string{youtube.YoutubeForceSslScope},
		}
	})

	return oauthConfig
}

func StoreAuthCodeToken(token *oauth2.Token, sessionID string) {
	prefix := sessionID + "_"

	tokenstore.GlobalTokenStore.SetToken(prefix+string(tokenstore.YOUTUBE_AC), tokenstore.TokenEntry{
		Token:      token,
		Expiration: token.Expiry,
	})
}

func getAuthCodeToken(sessionID string) (*oauth2.Token, error) {
	token, tokenValid := tokenstore.GlobalTokenStore.GetToken(sessionID + "_" + string(tokenstore.YOUTUBE_AC))

	if tokenValid {
		return token, nil
	}

	if token != nil {
		// refresh the expired token
		ts := OauthConfig().TokenSource(context.Background(), token)
		fresh, err := ts.Token()
		if err != nil {
			return nil, err
		}

		StoreAuthCodeToken(fresh, sessionID)

		return fresh, nil
	}

	return nil, errors.New("no token for session")
}
