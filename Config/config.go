package Config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig carries every tunable the server reads from the environment.
type AppConfig struct {
	Port          string `envconfig:"PORT" default:"3001"`
	DBDriver      string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN         string `envconfig:"DB_DSN" default:"database.db"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"secret"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Patron"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	AvatarDir     string `envconfig:"AVATAR_DIR" default:"Avatars"`
}

// Load reads .env if present, then the process environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using process environment")
	}
	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
