package main

import (
	"fmt"
	"log"
	"os"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/auth"
	"staffportal/backend/internal/commands"
	"staffportal/backend/internal/pkg/config"
	"staffportal/backend/internal/pkg/repository/postgresql"
	"staffportal/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"
)

func main() {
	var boot struct {
		ConfigFile string `conf:"default:config.yaml"`
	}

	if err := conf.Parse(os.Args[1:], "PORTAL", &boot); err != nil {
		if err == conf.ErrHelpWanted {
			usage, uerr := conf.Usage("PORTAL", &boot)
			if uerr != nil {
				log.Fatalln("generating usage:", uerr)
			}
			fmt.Println(usage)
			return
		}
		log.Fatalln("parsing args:", err)
	}

	cfg, err := config.NewConfig(boot.ConfigFile)
	if err != nil {
		log.Fatalln("loading config:", err)
	}

	postgresDB := postgresql.NewDatabase(postgresql.Config{
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
	})

	commands.Migrate(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	a := auth.New(cfg.JWTKey)
	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, a, cfg)
	if err := r.Init(); err != nil {
		log.Fatalln("server stopped:", err)
	}
}
