package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/hr-core-go/internal/domain/medication"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

func TestMedicationRepository_RefillUpdatesExpiryAndHistory(t *testing.T) {
	repo := NewMedicationRepository(kv.NewMemoryStore())

	id, err := repo.Add(&medication.Medication{
		EmployeeID: "emp-1",
		Name:       "Ibuprofen",
		Dosage:     "200mg",
		IssueDate:  "2024-06-01",
		ExpiryDate: "2024-06-20",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Refill(id, "2024-07-20"))

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-20", stored.ExpiryDate)

	history, err := repo.GetHistory(id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, record.HistoryCreated, history[0].Action)
	assert.Equal(t, record.HistoryRefilled, history[1].Action)
}

func TestMedicationRepository_RefillMissingIDIsNoOp(t *testing.T) {
	repo := NewMedicationRepository(kv.NewMemoryStore())

	assert.NoError(t, repo.Refill("missing", "2024-07-20"))

	history, err := repo.GetHistory("missing")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMedicationRepository_RefillWithoutExpiryIsNotRefillable(t *testing.T) {
	repo := NewMedicationRepository(kv.NewMemoryStore())

	id, err := repo.Add(&medication.Medication{
		EmployeeID: "emp-1", Name: "Ibuprofen", IssueDate: "2024-06-01",
	})
	require.NoError(t, err)

	err = repo.Refill(id, "2024-07-20")
	assert.ErrorIs(t, err, medication.ErrNotRefillable)

	history, err := repo.GetHistory(id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record.HistoryCreated, history[0].Action)
}
