package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Stage{},
		&Paragraphe{},
		&Section{},
		&Jeu{},
		&Question{},
		&Reponse{},
		&Palmares{},
		&BoardIndex{},
	)
}
