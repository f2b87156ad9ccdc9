package company

import "errors"

var (
	ErrNameExists     = errors.New("company name already exists")
	ErrTeamNameExists = errors.New("team name already exists in this company")
	ErrUnknownCompany = errors.New("team references an unknown company")
)
