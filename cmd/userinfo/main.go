package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-userinfo-client/internal/config"
	clienterrors "github.com/jrsteele09/go-userinfo-client/internal/errors"
	"github.com/jrsteele09/go-userinfo-client/token"
	"github.com/jrsteele09/go-userinfo-client/userinfo"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error retrieving UserInfo: %s\n", err)
	}
}

func run() error {
	c := config.New()
	displayAppname(c.GetAppName())

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if c.GetEnv() != "DEV" {
		logger = logger.Level(zerolog.InfoLevel)
	}

	accessToken := c.GetAccessToken()
	if accessToken == "" {
		return errors.New("ACCESS_TOKEN is required")
	}

	ctx := context.Background()

	endpoint, err := resolveEndpoint(ctx, c)
	if err != nil {
		return err
	}
	logger.Debug().Str("endpoint", endpoint).Msg("Resolved UserInfo endpoint")

	preflight(logger, accessToken)

	retriever := userinfo.New(
		userinfo.WithTimeouts(c.GetConnectTimeout(), c.GetReadTimeout()),
		userinfo.WithMethod(c.GetHTTPMethod()),
		userinfo.WithLogger(logger),
	)

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	claims, err := retriever.RetrieveWithTokenSource(ctx, endpoint, source)
	if err != nil {
		var retrieveErr *userinfo.Error
		if clienterrors.As(err, &retrieveErr) {
			logger.Error().
				Str("code", retrieveErr.Code).
				Str("kind", retrieveErr.Kind.String()).
				Msg(retrieveErr.Description)
		}
		return err
	}

	out, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return clienterrors.Wrapf(err, "failed to marshal claims")
	}
	fmt.Println(string(out))
	return nil
}

// resolveEndpoint prefers an explicitly configured endpoint; otherwise it
// discovers userinfo_endpoint from the issuer's OIDC provider metadata
func resolveEndpoint(ctx context.Context, c config.Config) (string, error) {
	if endpoint := c.GetEndpoint(); endpoint != "" {
		return endpoint, nil
	}
	issuer := c.GetIssuer()
	if issuer == "" {
		return "", errors.New("set USERINFO_ENDPOINT or OIDC_ISSUER")
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return "", clienterrors.Wrapf(err, "provider discovery failed for %s", issuer)
	}

	var metadata struct {
		UserInfoEndpoint string `json:"userinfo_endpoint"`
	}
	if err := provider.Claims(&metadata); err != nil {
		return "", clienterrors.Wrapf(err, "failed to read provider metadata")
	}
	if metadata.UserInfoEndpoint == "" {
		return "", errors.New("provider advertises no userinfo_endpoint")
	}
	return metadata.UserInfoEndpoint, nil
}

// preflight warns when the token is a JWT that already looks expired. Opaque
// tokens cannot be inspected and are sent as-is.
func preflight(logger zerolog.Logger, accessToken string) {
	inspection, err := token.Inspect(accessToken)
	if err != nil {
		if clienterrors.Is(err, clienterrors.ErrOpaqueToken) {
			logger.Debug().Msg("Opaque access token, skipping expiry preflight")
		}
		return
	}
	if inspection.Expired {
		logger.Warn().Time("expired_at", inspection.ExpiresAt).Msg("Access token appears expired")
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
