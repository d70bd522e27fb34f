package postgres

import (
	"context"
	"fmt"
	"strings"

	"wandshop/internal/adapters/out/postgres/answerrepo"
	"wandshop/internal/adapters/out/postgres/orderrepo"
	"wandshop/internal/adapters/out/postgres/wandrepo"
	"wandshop/internal/adapters/out/postgres/wizardrepo"
	"wandshop/internal/core/domain/model/order"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects through the lib/pq driver, so constraint violations surface as
// *pq.Error to the repositories.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// DSN builds a keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

type foreignKey struct {
	table, column, refTable string
}

var foreignKeys = []foreignKey{
	{"orders", "wizard_id", "wizards"},
	{"orders", "wand_id", "wands"},
	{"answers", "wizard_id", "wizards"},
	{"answers", "wand_id", "wands"},
}

// Migrate creates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&wizardrepo.WizardDTO{},
		&wandrepo.WandDTO{},
		&orderrepo.OrderDTO{},
		&answerrepo.AnswerDTO{},
	); err != nil {
		return err
	}

	codes := make([]string, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		codes = append(codes, fmt.Sprint(int(s)))
	}
	err := db.Exec(fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON orders (wand_id) WHERE status IN (%s)",
		orderrepo.ActiveWandIndex, strings.Join(codes, ", "),
	)).Error
	if err != nil {
		return err
	}

	for _, fk := range foreignKeys {
		name := fmt.Sprintf("fk_%s_%s", fk.table, fk.column)
		if db.Migrator().HasConstraint(fk.table, name) {
			continue
		}
		err = db.Exec(fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id)",
			fk.table, name, fk.column, fk.refTable,
		)).Error
		if err != nil {
			return err
		}
	}
	return nil
}
