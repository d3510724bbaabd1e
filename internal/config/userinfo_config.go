package config

import (
	"net/http"
	"os"
	"time"
)

type UserInfoConfig interface {
	GetConnectTimeout() time.Duration
	GetReadTimeout() time.Duration
	GetHTTPMethod() string
}

type UserInfo struct{}

var _ UserInfoConfig = UserInfo{}

func (UserInfo) GetConnectTimeout() time.Duration {
	return durationEnv("USERINFO_CONNECT_TIMEOUT", 30*time.Second)
}

func (UserInfo) GetReadTimeout() time.Duration {
	return durationEnv("USERINFO_READ_TIMEOUT", 30*time.Second)
}

func (UserInfo) GetHTTPMethod() string {
	return GetEnv("USERINFO_HTTP_METHOD", http.MethodGet)
}

func durationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
