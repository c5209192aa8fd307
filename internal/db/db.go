package db

import (
	"frontsession/internal/models"
	"frontsession/internal/utils"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects, migrates and seeds the demo content
func Init(dsn, adminPassword string, log zerolog.Logger) *gorm.DB {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	log.Info().Msg("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migration completed")

	seedContent(adminPassword, log)
	return DB
}

func seedContent(adminPassword string, log zerolog.Logger) {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Debug().Msg("Users already seeded, skipping")
		return
	}
	if adminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping demo content")
		return
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash admin password")
		return
	}
	admin := models.User{
		Username:    "admin",
		DisplayName: "Administrator",
		Email:       "admin@localhost",
		Password:    hash,
		IsActivated: true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("Failed to create admin user")
		return
	}

	post := models.Post{
		UserID:      admin.ID,
		Title:       "Welcome",
		Content:     "This blog is up. Sign in from the sidebar to comment with your profile.",
		OpenComment: true,
	}
	if err := DB.Create(&post).Error; err != nil {
		log.Error().Err(err).Msg("Failed to create welcome post")
		return
	}
	log.Info().Msg("Demo content created")
}
