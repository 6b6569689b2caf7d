package data

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

var seedGames = []types.Game{
	// National games
	{Name: "VAG MONDAY", Description: "National - shutoff 10:00am"},
	{Name: "VAG TUESDAY", Description: "National - shutoff 10:00am"},
	{Name: "VAG WEDNESDAY", Description: "National - shutoff 10:00am"},
	{Name: "VAG THURSDAY", Description: "National - shutoff 10:00am"},
	{Name: "VAG FRIDAY", Description: "National - shutoff 10:00am"},
	{Name: "VAG SATURDAY", Description: "National - shutoff 10:00am"},
	{Name: "MONDAY NOONRUSH", Description: "National - shutoff 1:30pm"},
	{Name: "TUESDAY NOONRUSH", Description: "National - shutoff 1:30pm"},
	{Name: "WEDNESDAY NOONRUSH", Description: "National - shutoff 1:30pm"},
	{Name: "THURSDAY NOONRUSH", Description: "National - shutoff 1:30pm"},
	{Name: "FRIDAY NOONRUSH", Description: "National - shutoff 1:30pm"},
	{Name: "SATURDAY NOONRUSH", Description: "National - shutoff 1:30pm"},
	{Name: "MONDAY SPECIAL", Description: "National - shutoff 7:15pm"},
	{Name: "LUCKY TUESDAY", Description: "National - shutoff 7:15pm"},
	{Name: "MID-WEEK", Description: "National - shutoff 7:15pm"},
	{Name: "FORTUNE THURSDAY", Description: "National - shutoff 7:15pm"},
	{Name: "FRIDAY BONANZA", Description: "National - shutoff 7:15pm"},
	{Name: "NATIONAL", Description: "National - shutoff 7:15pm"},
	{Name: "ASEDA", Description: "National - shutoff 7:15pm"},
	// Rand lottery games
	{Name: "BINGO4", Description: "Rand Lottery - shutoff 6:50am"},
	{Name: "GOLDEN SOUVENIR", Description: "Rand Lottery - shutoff 6:50am"},
	{Name: "CASH4LIFE", Description: "Rand Lottery - shutoff 6:50am"},
	{Name: "ENDOWMENT LOTTO", Description: "Rand Lottery - shutoff 6:50am"},
	{Name: "SIKA KESE", Description: "Rand Lottery - shutoff 6:50am"},
	{Name: "SAMEDI SOIR", Description: "Rand Lottery - shutoff 6:50am"},
	{Name: "STAR LOTTO", Description: "Rand Lottery - shutoff 6:50am"},
}

// SeedGames inserts the reference game list, skipping names already present.
func SeedGames(db *gorm.DB) error {
	for _, game := range seedGames {
		var existing types.Game
		err := db.First(&existing, "name = ?", game.Name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&game).Error; err != nil {
			return err
		}
	}
	return nil
}
