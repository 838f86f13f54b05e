package main

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/enerlytics/enerlytics/internal/config"
	"github.com/enerlytics/enerlytics/internal/database"
	"github.com/enerlytics/enerlytics/internal/domain"
	"github.com/enerlytics/enerlytics/internal/repository"
)

// Seeds a demo account with a spread of appliances so the dashboard has
// something to chart on first run.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	repos := repository.New(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash failed")
	}

	user := &domain.User{
		Name:           "Demo User",
		Email:          "demo@enerlytics.local",
		PasswordHash:   string(hash),
		Address:        "42 Demo Street",
		NoOfAppliances: 6,
		LastMonthBill:  600,
	}
	if err := repos.CreateUser(user); err != nil {
		log.Fatal().Err(err).Msg("seed user failed")
	}

	devices := []domain.Device{
		{Name: "Air Conditioner", PowerRating: 1500, UsageHours: 8, Status: domain.StatusOn},
		{Name: "Water Heater", PowerRating: 2000, UsageHours: 1.5, Status: domain.StatusOff},
		{Name: "Refrigerator", PowerRating: 200, UsageHours: 24, Status: domain.StatusOn},
		{Name: "Washing Machine", PowerRating: 500, UsageHours: 1, Status: domain.StatusOff},
		{Name: "Ceiling Fan", PowerRating: 75, UsageHours: 12, Status: domain.StatusOn},
		{Name: "LED Lights", PowerRating: 60, UsageHours: 6, Status: domain.StatusOff},
	}
	for i := range devices {
		devices[i].UserID = user.ID
		if err := repos.CreateDevice(&devices[i]); err != nil {
			log.Fatal().Err(err).Str("device", devices[i].Name).Msg("seed device failed")
		}
	}

	log.Info().Str("user_id", user.ID).Int("devices", len(devices)).Msg("seed complete")
}
