package seed

import (
	"errors"
	"fmt"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/config"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed makes sure the single price and password rows exist. Role passwords
// are stored as bcrypt hashes; plain-text values left by older deployments
// are hashed in place.
func Seed(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if err := seedPrices(db, log); err != nil {
		return err
	}
	return seedPasswords(db, cfg, log)
}

func seedPrices(db *gorm.DB, log *zap.Logger) error {
	var price models.PriceModel
	err := db.Order("id").First(&price).Error
	if err == nil {
		log.Info("Price row already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("reading prices: %w", err)
	}

	defaults := services.DefaultPrices()
	if err := db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("creating default prices: %w", err)
	}
	log.Info("Default prices created")
	return nil
}

func seedPasswords(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	var row models.PasswordModel
	err := db.Order("id").First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if cfg.OperatorPassword == "" || cfg.StatsPassword == "" {
			log.Warn("OPERATOR_PASSWORD and STATS_PASSWORD must be set to create the password row")
			return nil
		}
		operator, err := services.HashPassword(cfg.OperatorPassword)
		if err != nil {
			return err
		}
		stats, err := services.HashPassword(cfg.StatsPassword)
		if err != nil {
			return err
		}
		if err := db.Create(&models.PasswordModel{Operador: operator, Estadisticas: stats}).Error; err != nil {
			return fmt.Errorf("creating password row: %w", err)
		}
		log.Info("Password row created")
		return nil
	case err != nil:
		return fmt.Errorf("reading passwords: %w", err)
	}

	updates := map[string]any{}
	for column, stored := range map[string]string{"operador": row.Operador, "estadisticas": row.Estadisticas} {
		if stored == "" || services.IsBcryptHash(stored) {
			continue
		}
		hashed, err := services.HashPassword(stored)
		if err != nil {
			return err
		}
		updates[column] = hashed
	}
	if len(updates) == 0 {
		log.Info("Password row already hashed")
		return nil
	}
	if err := db.Model(&row).Updates(updates).Error; err != nil {
		return fmt.Errorf("hashing stored passwords: %w", err)
	}
	log.Info("Plain-text passwords hashed", zap.Int("columns", len(updates)))
	return nil
}
