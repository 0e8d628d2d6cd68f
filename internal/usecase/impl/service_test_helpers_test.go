package impl

import (
	"io"
	"log/slog"
	"testing"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func contractorActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Role: entity.RoleContractor}
}

func workerActor(workerID uuid.UUID) entity.Actor {
	return entity.Actor{UserID: uuid.New(), Role: entity.RoleWorker, WorkerID: &workerID}
}

// assertErrorCode matches on the business error code, since WithDetails
// returns a distinct error value.
func assertErrorCode(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}
