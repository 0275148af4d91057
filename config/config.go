package config

import (
	"os"

	"food-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret signs admin tokens. Read from env on every call, not at package
// init, so values loaded from .env in main are honored.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "food_menu_super_secret_2024"))
}

// AdminKey is the shared key exchanged for a JWT on /api/auth/token
func AdminKey() string {
	return GetEnv("ADMIN_KEY", "change-me")
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates the food item schema
func InitDB() *gorm.DB {
	path := GetEnv("DB_PATH", "food_menu.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := db.AutoMigrate(&models.FoodItem{}); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	logrus.WithField("path", path).Info("database connected and migrated")
	return db
}
