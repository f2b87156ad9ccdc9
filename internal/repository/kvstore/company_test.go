package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/hr-core-go/internal/domain/company"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

func TestCompanyRepository_NameUniqueness(t *testing.T) {
	repo := NewCompanyRepository(kv.NewMemoryStore())

	_, err := repo.Add(&company.Company{Name: "Acme"})
	require.NoError(t, err)

	_, err = repo.Add(&company.Company{Name: "ACME"})
	assert.ErrorIs(t, err, company.ErrNameExists)
}

func TestTeamRepository_RequiresExistingCompany(t *testing.T) {
	store := kv.NewMemoryStore()
	companies := NewCompanyRepository(store)
	teams := NewTeamRepository(store)

	_, err := teams.Add(&company.Team{Name: "Engineering", CompanyID: "nope"})
	assert.ErrorIs(t, err, company.ErrUnknownCompany)

	companyID, err := companies.Add(&company.Company{Name: "Acme"})
	require.NoError(t, err)

	_, err = teams.Add(&company.Team{Name: "Engineering", CompanyID: companyID})
	assert.NoError(t, err)
}

func TestTeamRepository_NameUniqueWithinCompany(t *testing.T) {
	store := kv.NewMemoryStore()
	companies := NewCompanyRepository(store)
	teams := NewTeamRepository(store)

	acmeID, err := companies.Add(&company.Company{Name: "Acme"})
	require.NoError(t, err)
	globexID, err := companies.Add(&company.Company{Name: "Globex"})
	require.NoError(t, err)

	_, err = teams.Add(&company.Team{Name: "Engineering", CompanyID: acmeID})
	require.NoError(t, err)

	_, err = teams.Add(&company.Team{Name: "engineering", CompanyID: acmeID})
	assert.ErrorIs(t, err, company.ErrTeamNameExists)

	// The same name under another company is fine.
	_, err = teams.Add(&company.Team{Name: "Engineering", CompanyID: globexID})
	assert.NoError(t, err)
}
