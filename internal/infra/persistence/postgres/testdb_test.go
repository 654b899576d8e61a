package postgres

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB starts a disposable Postgres container, migrates the schema and
// returns a GORM handle. Skipped in -short runs since it needs Docker.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.RatingModel{}))

	return db
}

// seedAccount inserts an account row directly and returns its ID.
func seedAccount(t *testing.T, db *gorm.DB, role entity.Role, email string) uuid.UUID {
	t.Helper()

	account := model.UserModel{
		ID:           uuid.New(),
		Name:         "Seeded Account For Repository Tests",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         role.String(),
	}
	require.NoError(t, db.Create(&account).Error)

	return account.ID
}
