package store

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	constant "aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

// Store is the local persistence layer for client-held state: the current
// session and the theme preference. It is the moral equivalent of the
// browser's localStorage, so it only ever holds small, last-write-wins
// records.
type Store struct {
	Conn *gorm.DB
}

var (
	instance *Store
	once     sync.Once
)

func GetInstance(dialector gorm.Dialector) *Store {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to open local store:", err)
		}

		logger.Info("Opened local store with dialector:", zap.String("dialector", dialector.Name()))

		instance = &Store{Conn: conn}

		err = instance.Conn.AutoMigrate(&models.Session{}, &models.ThemePreference{})
		if err != nil {
			log.Fatal("Failed to migrate local store:", err)
		}

		logger.Info("Local store migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyAQVDbPath); !found {
		dbPath = "dashboard.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
