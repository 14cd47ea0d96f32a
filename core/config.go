package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "StudyHub")
	Conf.SetDefault("secretKey", "x2m)7dqz&+58=wer!poq5-enb$(h^cegm#yg4uoxh2(c2emy*")
	Conf.SetDefault("serverAddr", ":8080")
	Conf.SetDefault("defaultFromEmail", "noreply@localhost")
	Conf.SetDefault("sendgridApiKey", "")
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("sessionTTL", 7*24*time.Hour)

	// simulated network latency; reads resolve faster than writes
	Conf.SetDefault("queryDelay", 500*time.Millisecond)
	Conf.SetDefault("mutationDelay", time.Second)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
		Conf.SetDefault("queryDelay", time.Duration(0))
		Conf.SetDefault("mutationDelay", time.Duration(0))
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// SetTestMode zeroes the simulated latency and flags the config for tests
// that cannot rely on ENV=TEST being exported.
func SetTestMode() {
	Conf.Set("testMode", true)
	Conf.Set("queryDelay", time.Duration(0))
	Conf.Set("mutationDelay", time.Duration(0))
}
