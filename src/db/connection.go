package db

import (
	"fmt"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/config"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens a gorm connection for the given driver name
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// Connect opens the configured database
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error("Error al conectar a la base de datos", zap.String("driver", cfg.DBDriver), zap.Error(err))
		return nil, err
	}

	log.Info("NicaExpressway DB connected successfully!", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// Migrate creates or updates every table the service owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PackageModel{},
		&models.HistoryModel{},
		&models.RequestModel{},
		&models.ReminderModel{},
		&models.PriceModel{},
		&models.PasswordModel{},
	)
}
