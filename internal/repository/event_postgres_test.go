package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
)

func setupEventMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, domain.EventRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewEventRepository(db)
}

func TestEventRepository_RSVPFlowTx(t *testing.T) {
	db, mock, repo := setupEventMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()
	start := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow("ev-1", "org-1", "Tryout night", "tryout", nil, start, start.Add(2*time.Hour), 30, start, start))
	mock.ExpectQuery(`SELECT (.+) FROM rsvps WHERE email = \$1 AND event_id = \$2 AND status <> \$3 LIMIT 1`).
		WithArgs("dana@example.com", "ev-1", domain.RSVPCancelled).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(1 \+ guests\), 0\) FROM rsvps WHERE event_id = \$1 AND status = \$2`).
		WithArgs("ev-1", domain.RSVPConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(28))
	mock.ExpectExec(`INSERT INTO rsvps`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		ev, err := repo.LockEventTx(ctx, tx, "ev-1")
		require.NoError(t, err)

		existing, err := repo.FindActiveRSVPTx(ctx, tx, ev.ID, "dana@example.com")
		require.NoError(t, err)
		assert.Nil(t, existing)

		headcount, err := repo.ConfirmedHeadcountTx(ctx, tx, ev.ID)
		require.NoError(t, err)

		status := domain.RSVPStatusFor(ev.Capacity, headcount, 2)
		assert.Equal(t, domain.RSVPWaitlisted, status)

		return repo.CreateRSVPTx(ctx, tx, &domain.RSVP{
			EventID: ev.ID, OrganizationID: ev.OrganizationID, LeadID: "l1", Name: "Dana", Email: "dana@example.com",
			Guests: 2, Status: status,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListWaitlistedTx(t *testing.T) {
	db, mock, repo := setupEventMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM rsvps WHERE event_id = \$1 AND status = \$2 ORDER BY created_at, id FOR UPDATE`).
		WithArgs("ev-1", domain.RSVPWaitlisted).
		WillReturnRows(sqlmock.NewRows(rsvpColumns).
			AddRow("r1", "ev-1", "org-1", "l1", "A", "a@example.com", 0, "waitlisted", now, now).
			AddRow("r2", "ev-1", "org-1", "l2", "B", "b@example.com", 3, "waitlisted", now, now))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		list, err := repo.ListWaitlistedTx(ctx, tx, "ev-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 4, list[1].Headcount())
		return nil
	})
	require.NoError(t, err)
}

func TestEventRepository_List_FromFilter(t *testing.T) {
	db, mock, repo := setupEventMock(t)
	defer func() { _ = db.Close() }()
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE organization_id = \$1 AND starts_at >= \$2 ORDER BY starts_at, id`).
		WithArgs("org-1", from).
		WillReturnRows(sqlmock.NewRows(eventColumns))

	events, err := repo.List(context.Background(), "org-1", &from)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
