package config

type Config interface {
	EnvConfig
	UserInfoConfig
}

type mainConfig struct {
	EnvVars
	UserInfo
}

func New() Config {
	return mainConfig{}
}
