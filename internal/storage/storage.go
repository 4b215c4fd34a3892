package storage

import (
	"sync"

	"github.com/ssqlone/ByteStash/internal/config"
	"github.com/ssqlone/ByteStash/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

func GetDb() *gorm.DB {
	once.Do(func() {
		env := config.GetEnv()
		log := logger.GetLogger()

		gormDb, err := gorm.Open(postgres.Open(env.DatabaseDsn), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			panic(err)
		}

		db = gormDb
	})

	return db
}
