package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/auth"
	"worksite/backend/internal/commands"
	"worksite/backend/internal/pkg/config"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("main: error:", err)
	}
}

func run() error {
	var flags struct {
		Port    string `conf:"default::8080"`
		Migrate bool   `conf:"default:true"`
		Debug   bool   `conf:"default:false"`
	}

	if err := conf.Parse(os.Args[1:], "WORKSITE", &flags); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("WORKSITE", &flags)
			if err != nil {
				return err
			}
			fmt.Println(usage)
			return nil
		}
		return err
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	postgresDB := postgresql.New(postgresql.Config{
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
		Debug:      flags.Debug,
	})
	defer postgresDB.Close()

	if flags.Migrate {
		commands.MigrateUP(postgresDB)
	}

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	authenticator := auth.New(cfg.JWTKey, redisDB)

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, flags.Port, authenticator, cfg.BaseUrl)

	return r.Init()
}
