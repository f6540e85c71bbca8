package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMockDB(t *testing.T) {
	db, mock, cleanup := SetupMockDB(t)
	require.NotNil(t, mock)

	assert.NoError(t, db.Ping())
	cleanup()
	assert.Error(t, db.Ping())
}

func TestCountRows(t *testing.T) {
	db, mock, cleanup := SetupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(CountRows(42))

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM athlete_profiles").Scan(&n))
	assert.Equal(t, 42, n)
}
