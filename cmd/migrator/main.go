package main

import (
	"fmt"
	"log"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/service/config"
	"github.com/Fin1704/3KingAuto-server/internal/service/dsn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate() (err error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	db, err := gorm.Open(postgres.Open(dsn.FromConfig(cfg)), &gorm.Config{})
	if err != nil {
		return err
	}
	// gen_random_uuid() lives in pgcrypto before PostgreSQL 13.
	if err = db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return err
	}
	err = db.AutoMigrate(&domain.Player{}, &domain.Hero{}, &domain.Rune{})
	if err != nil {
		return err
	}
	fmt.Println("Database migrated")
	return nil
}

func main() {
	err := migrate()
	if err != nil {
		log.Fatal(err)
	}
}
