package storage

import (
	"sync"

	"artconf/internal/config"
	"artconf/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()

	connection, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
		// constraint violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}

	db = connection
}

// RunMigrations brings the schema up to date. Models declare their
// own indexes and unique constraints via gorm tags.
func RunMigrations(models ...any) error {
	return GetDb().AutoMigrate(models...)
}
