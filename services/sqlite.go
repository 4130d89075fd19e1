package services

import (
	"context"
	"errors"
	"os"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pocketnative/pocketnative_api/model"
)

// SqliteService is the default document backend: one row per storage
// namespace, whole document replaced on every write.
type SqliteService struct {
	appContext.DefaultService
	db *gorm.DB

	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *appContext.Context) error {
	ds.database = os.Getenv("SQLITE_PATH")
	if ds.database == "" {
		ds.database = "pocketnative.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() (err error) {
	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	if err = ds.db.AutoMigrate(&model.StateDocument{}); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) GetDocument(ctx context.Context, namespace string) ([]byte, error) {
	var doc model.StateDocument
	err := ds.db.WithContext(ctx).First(&doc, "namespace = ?", namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (ds *SqliteService) PutDocument(ctx context.Context, namespace string, data []byte) error {
	doc := model.StateDocument{
		Namespace: namespace,
		Data:      data,
	}

	return ds.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
}

func (ds *SqliteService) DeleteDocument(ctx context.Context, namespace string) error {
	return ds.db.WithContext(ctx).Delete(&model.StateDocument{}, "namespace = ?", namespace).Error
}
