// @title Council of Elders API
// @version 1.0
// @description Serverless backend for the Council of Elders debate: persona catalog, debate orchestration, judged voting and the leaderboard

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/vincenzo-scotto001/fantastic-giggle/docs"

	"github.com/spf13/viper"
	"github.com/vincenzo-scotto001/fantastic-giggle/api"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
