package kvstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

func TestLeaveRepository_AddDefaultsToPending(t *testing.T) {
	repo := NewLeaveRepository(kv.NewMemoryStore())

	id, err := repo.Add(&leave.Leave{EmployeeID: "emp-1", Type: leave.TypeLeave})
	require.NoError(t, err)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, stored.Status)

	// A caller-provided status is kept as is.
	id2, err := repo.Add(&leave.Leave{EmployeeID: "emp-1", Status: leave.StatusApproved})
	require.NoError(t, err)
	stored2, _ := repo.GetByID(id2)
	assert.Equal(t, leave.StatusApproved, stored2.Status)
}

func TestLeaveRepository_GetPending(t *testing.T) {
	repo := NewLeaveRepository(kv.NewMemoryStore())

	_, err := repo.Add(&leave.Leave{EmployeeID: "emp-1"})
	require.NoError(t, err)
	_, err = repo.Add(&leave.Leave{EmployeeID: "emp-2", Status: leave.StatusDeclined})
	require.NoError(t, err)

	pending, err := repo.GetPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "emp-1", pending[0].EmployeeID)
}

func TestLeaveRepository_GetUpcoming(t *testing.T) {
	repo := NewLeaveRepository(kv.NewMemoryStore())
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	_, err := repo.Add(&leave.Leave{EmployeeID: "today", StartDate: "2024-06-15"})
	require.NoError(t, err)
	_, err = repo.Add(&leave.Leave{EmployeeID: "past", StartDate: "2024-06-14"})
	require.NoError(t, err)
	_, err = repo.Add(&leave.Leave{EmployeeID: "fallback", DateTime: "2024-07-01"})
	require.NoError(t, err)
	_, err = repo.Add(&leave.Leave{EmployeeID: "broken", StartDate: "soon"})
	require.NoError(t, err)

	upcoming, err := repo.GetUpcoming(now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "today", upcoming[0].EmployeeID)
	assert.Equal(t, "fallback", upcoming[1].EmployeeID)
}

func TestLeaveRepository_UpdateStatusStampsApproval(t *testing.T) {
	repo := NewLeaveRepository(kv.NewMemoryStore())

	id, err := repo.Add(&leave.Leave{EmployeeID: "emp-1"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(id, leave.StatusApproved, "mgr-1"))

	stored, _ := repo.GetByID(id)
	assert.Equal(t, leave.StatusApproved, stored.Status)
	assert.Equal(t, "mgr-1", stored.ApprovedBy)
	assert.NotEmpty(t, stored.ApprovedAt)

	// Missing ids are a quiet no-op.
	assert.NoError(t, repo.UpdateStatus("missing", leave.StatusDeclined, "mgr-1"))
}

func TestLeaveRepository_AddValidatesTypeAndRange(t *testing.T) {
	repo := NewLeaveRepository(kv.NewMemoryStore())

	_, err := repo.Add(&leave.Leave{EmployeeID: "emp-1", Type: "sabbatical"})
	assert.ErrorIs(t, err, leave.ErrUnknownType)

	_, err = repo.Add(&leave.Leave{
		EmployeeID: "emp-1", Type: leave.TypeLeave,
		StartDate: "2024-06-10", EndDate: "2024-06-01",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all, "failed adds must leave the store unchanged")
}
