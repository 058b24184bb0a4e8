package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

// OpenDB connects to PostgreSQL with a bounded retry loop and optionally
// runs the schema migration. Startup aborts if the database stays
// unreachable past the deadline.
func OpenDB(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
