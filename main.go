package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"vrzone-backend/config"
	"vrzone-backend/controllers"
	"vrzone-backend/models"
	"vrzone-backend/routes"
	"vrzone-backend/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := db.AutoMigrate(&models.Customer{}, &models.Booking{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	sender, err := buildSender(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize notification channel")
	}

	dispatcher := services.NewDispatcher(sender, logger)
	bookingService := services.NewBookingService(db, dispatcher, logger)
	services.StartDigestScheduler(db, dispatcher, logger)

	if cfg.ClientBotToken != "" {
		clientBot, err := services.NewClientBot(cfg.ClientBotToken, dispatcher, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize client bot")
		}
		clientBot.Start()
	}

	bc := &controllers.BookingController{Service: bookingService}
	r := routes.SetupRouter(bc, logger)

	logger.Info().Str("port", cfg.Port).Str("channel", cfg.Channel).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func buildSender(cfg config.Config) (services.Sender, error) {
	if cfg.Channel == config.ChannelTwilio {
		return services.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom, cfg.TwilioTo), nil
	}
	return services.NewTelegramSender(cfg.BotToken, cfg.ChatID)
}
