package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/repository/specification"
	"edge-journal-be/internal/repository/unitofwork"
	"edge-journal-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.RawEventRepository())
	assert.NotNil(t, uow.SessionChunkRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Raw Event Repository", func(t *testing.T) {
		count, err := uow.RawEventRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("RawEvent count: %d", count)
	})

	t.Run("Check Session Chunk Repository", func(t *testing.T) {
		count, err := uow.SessionChunkRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SessionChunk count: %d", count)
	})
}

func TestRawEventRoundTrip(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	sessionId := "itest-" + uuid.NewString()
	now := time.Now()

	events := []*entity.RawEvent{
		{Id: uuid.New(), SessionId: sessionId, Source: entity.EventSourceOCR, Timestamp: now, Text: "first screen", CreatedAt: now},
		{Id: uuid.New(), SessionId: sessionId, Source: entity.EventSourceASR, Timestamp: now.Add(time.Second), Text: "spoken next", CreatedAt: now},
	}
	require.NoError(t, uow.RawEventRepository().CreateBulk(ctx, events))

	got, err := uow.RawEventRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first screen", got[0].Text)
	assert.Equal(t, entity.EventSourceASR, got[1].Source)
}
