package api

import (
	"sync"

	"github.com/spf13/viper"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
)

type Config struct {
	StorageConfig
	ServerConfig
	OpenAIConfig
	DebateConfig
}

type StorageConfig struct {
	TableNameElders       string
	TableNameInteractions string
}

type ServerConfig struct {
	Port int
}

type OpenAIConfig struct {
	Model          string
	BaseURL        string
	TimeoutSeconds int
}

type DebateConfig struct {
	Rounds      int
	CouncilSize int
	TurnDelayMs int
	Stream      bool
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameElders:       viper.GetString("storage.TableNameElders"),
			TableNameInteractions: viper.GetString("storage.TableNameInteractions"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		OpenAIConfig: OpenAIConfig{
			Model:          getStringOrDefault("openai.model", "gpt-4o-mini"),
			BaseURL:        getStringOrDefault("openai.baseURL", ""),
			TimeoutSeconds: getIntOrDefault("openai.timeoutSeconds", 30),
		},
		DebateConfig: DebateConfig{
			Rounds:      getIntOrDefault("debate.rounds", 2),
			CouncilSize: getIntOrDefault("debate.councilSize", 9),
			TurnDelayMs: getIntOrDefault("debate.turnDelayMs", 0),
			Stream:      getBoolOrDefault("debate.stream", true),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
