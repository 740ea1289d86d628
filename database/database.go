package database

import (
	"coaching-app/config"
	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/plans"
	"coaching-app/internal/domain/users"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		zap.L().Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	DB = db

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		zap.L().Fatal("failed to enable pgcrypto extension", zap.Error(err))
	}

	if err := DB.AutoMigrate(
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.StripeAccount{},
		&billing.ClientSubscription{},
		&billing.ClientPayment{},
	); err != nil {
		zap.L().Fatal("auto-migrate failed", zap.Error(err))
	}

	zap.L().Info("database connected and migrated")
}
