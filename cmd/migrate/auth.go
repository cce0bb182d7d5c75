package main

import (
	"context"
	"fmt"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/jpp0ca/yt-spotify-migrator/internal/config"
)

var spotifyScopes = []string{
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopePlaylistModifyPrivate,
	spotifyauth.ScopeUserLibraryRead,
}

func oauthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		RedirectURL:  cfg.SpotifyRedirectURI,
		Scopes:       spotifyScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyauth.AuthURL,
			TokenURL: spotifyauth.TokenURL,
		},
	}
}

// spotifyToken returns an access token for the user, exchanging the refresh
// token when one is configured.
func spotifyToken(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.SpotifyRefreshToken == "" {
		if cfg.SpotifyAccessToken == "" {
			return "", fmt.Errorf("spotify: no user credential configured")
		}
		return cfg.SpotifyAccessToken, nil
	}

	tok, err := oauthConfig(cfg).TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.SpotifyRefreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("spotify: refresh access token: %w", err)
	}
	return tok.AccessToken, nil
}
