package config

import (
	"fmt"

	"naraintegration/models"
	"naraintegration/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the GORM handle backing the integration store, nil for the memory and none drivers.
var DB *gorm.DB

// ConnectDB opens the configured MySQL database and makes sure the store table exists.
func ConnectDB() error {
	logger.Infof("Connecting to database %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)

	db, err := openMySQL(Cfg.DBUser, Cfg.DBPass, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", models.StoreEntry{}.TableName(), err)
	}
	logger.Infof("GORM connected successfully to database %s", Cfg.DBName)

	DB = db
	return nil
}

func openMySQL(user, pass, host string, port int, name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, name)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s@%s:%d/%s: %w", user, host, port, name, err)
	}
	return db, nil
}
