package config

import "os"

const (
	appNameVar  = "APP_NAME"
	issuerVar   = "OIDC_ISSUER"
	endpointVar = "USERINFO_ENDPOINT"
	tokenVar    = "ACCESS_TOKEN"
)

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetIssuer() string
	GetEndpoint() string
	GetAccessToken() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "UserInfo Client")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetIssuer returns the OIDC issuer used to discover the UserInfo endpoint
// when USERINFO_ENDPOINT is not set directly
func (EnvVars) GetIssuer() string {
	return GetEnv(issuerVar, "")
}

func (EnvVars) GetEndpoint() string {
	return GetEnv(endpointVar, "")
}

func (EnvVars) GetAccessToken() string {
	return GetEnv(tokenVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
