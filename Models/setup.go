package Models

import (
	"log"

	"Puantaj/Config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg Config.AppConfig) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Wholesaler{},
		&Settings{},
	)

	// 2. Tables with foreign keys
	DB.AutoMigrate(
		&Entry{},          // Depends on User
		&AccTransaction{}, // Depends on Wholesaler
	)

	// 3. Bookkeeping
	DB.AutoMigrate(&SnapshotImport{})

	seedDefaults(cfg)
}

// seedDefaults guarantees an owner account and the settings row so a fresh
// install is immediately usable.
func seedDefaults(cfg Config.AppConfig) {
	var count int64
	DB.Model(&User{}).Count(&count)
	if count == 0 {
		var admin User
		admin.Name = cfg.AdminName
		admin.Permission = PermissionOwner
		if err := admin.SetPassword(cfg.AdminPassword); err != nil {
			log.Println("seed admin password:", err)
			return
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Println("seed admin:", err)
		} else {
			log.Printf("seeded owner account %q\n", admin.Name)
		}
	}

	if _, err := GetSettings(DB); err != nil {
		log.Println("seed settings:", err)
	}
}
