package data

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	return db
}

// Migrate keeps the schema in sync with the model set.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Game{},
		&types.Draw{},
		&types.Result{},
		&types.ResultApproval{},
		&types.Manager{},
		&types.Setting{},
	)
}
