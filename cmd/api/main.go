package main

import (
	"log"

	"Relief_Link/internal/config"
	"Relief_Link/internal/handler"
	"Relief_Link/internal/model"
	"Relief_Link/internal/pkg"
	"Relief_Link/internal/repository/mysql"
	"Relief_Link/internal/repository/redis"
	"Relief_Link/internal/router"
	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := mysql.InitDB(cfg.DBDSN); err != nil {
		log.Fatalf("mysql: %v", err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.CoinBalance{},
		&model.ResourceRequest{},
		&model.ResourceOffer{},
		&model.Alert{},
		&model.Subscriber{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	tokens, err := pkg.NewTokenMaker(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("token maker: %v", err)
	}

	mailer := pkg.NewMailer(pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	// The alert bus is optional; without brokers alerts are stored only.
	var producer service.AlertPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := pkg.NewAlertProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		defer p.Close()
		producer = p
	}

	userRepo := mysql.NewUserRepository(mysql.DB)
	coinRepo := mysql.NewCoinRepository(mysql.DB)

	userSvc := service.NewUserService(userRepo, tokens)
	requestSvc := service.NewRequestService(mysql.NewRequestRepository(mysql.DB))
	offerSvc := service.NewOfferService(mysql.NewOfferRepository(mysql.DB))
	alertSvc := service.NewAlertService(mysql.NewAlertRepository(mysql.DB), producer)
	coinSvc := service.NewCoinService(coinRepo, userRepo)
	notifySvc := service.NewNotifyService(mysql.NewSubscriberRepository(mysql.DB), mailer)
	feedSvc := service.NewFeedService(&redis.FeedCacheRepository{}, service.FeedConfig{
		WeatherAPIURL: cfg.WeatherAPIURL,
		QuakeFeedURL:  cfg.QuakeFeedURL,
		GeocodeAPIURL: cfg.GeocodeAPIURL,
	})

	cookieSecure := gin.Mode() == gin.ReleaseMode

	r := router.InitRouter(tokens, router.Handlers{
		User:      handler.NewUserHandler(userSvc, cookieSecure),
		Request:   handler.NewRequestHandler(requestSvc),
		Offer:     handler.NewOfferHandler(offerSvc),
		Alert:     handler.NewAlertHandler(alertSvc),
		Coin:      handler.NewCoinHandler(coinSvc),
		Subscribe: handler.NewSubscribeHandler(notifySvc),
		Feed:      handler.NewFeedHandler(feedSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
