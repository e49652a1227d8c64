package main

import (
	"log"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/fkventa/clubsite/biz/dal/model"
	"github.com/fkventa/clubsite/biz/handler"
	"github.com/fkventa/clubsite/biz/middleware"
	"github.com/fkventa/clubsite/biz/router"
	"github.com/fkventa/clubsite/biz/service"
	"github.com/fkventa/clubsite/pkg/config"
	"github.com/fkventa/clubsite/pkg/database"
	"github.com/fkventa/clubsite/pkg/lock"
	"github.com/fkventa/clubsite/pkg/mailer"
	"github.com/fkventa/clubsite/pkg/nameday"
	"github.com/fkventa/clubsite/pkg/redis"
	"github.com/fkventa/clubsite/pkg/storage"
	"github.com/fkventa/clubsite/pkg/validator"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.HeroSettings{},
		&model.TopBarSettings{},
		&model.NavbarSettings{},
		&model.EventsSettings{},
		&model.PartnersSettings{},
		&model.AboutSettings{},
		&model.NavbarMenuItem{},
		&model.GalleryItem{},
		&model.CalendarEvent{},
		&model.NewsArticle{},
		&model.Partner{},
		&model.AboutValue{},
		&model.AboutStat{},
	); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	if redisClient != nil {
		middleware.InitWriteLock(lock.New(redisClient, "clubsite:admin_write_lock", 30*time.Second, 10*time.Second))
		log.Printf("admin write lock enabled via redis at %s", cfg.Redis.Address)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	log.Printf("storage backend: %s", store.Type())

	var mail service.Mailer
	if cfg.SMTP.Host != "" {
		m, err := mailer.New(cfg.SMTP)
		if err != nil {
			log.Fatalf("init mailer: %v", err)
		}
		mail = m
	} else {
		log.Printf("smtp host not configured, contact form disabled")
	}

	svc := service.New(
		db,
		store,
		mail,
		nameday.NewClient(cfg.Nameday),
		validator.NewUploadConfig(cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
	)

	srv := server.New(server.WithHostPorts(cfg.Server.Address))
	srv.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS(&cfg.CORS))
	router.Register(srv, handler.New(svc), cfg.Admin.Token)

	log.Printf("listening on %s", cfg.Server.Address)
	srv.Spin()
}
