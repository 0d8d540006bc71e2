package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirinyoku/crew-go/internal/domain"
)

func TestValidateRoles(t *testing.T) {
	tests := []struct {
		name    string
		roles   []domain.Role
		wantErr bool
	}{
		{
			name:  "empty list is valid",
			roles: nil,
		},
		{
			name: "distinct names",
			roles: []domain.Role{
				{Name: "Server", Count: 3},
				{Name: "Hostess", Count: 1},
			},
		},
		{
			name: "zero count allowed",
			roles: []domain.Role{
				{Name: "Server", Count: 0},
			},
		},
		{
			name: "duplicate name",
			roles: []domain.Role{
				{Name: "Server", Count: 2},
				{Name: "Server", Count: 1},
			},
			wantErr: true,
		},
		{
			name: "missing name",
			roles: []domain.Role{
				{Name: "", Count: 2},
			},
			wantErr: true,
		},
		{
			name: "negative count",
			roles: []domain.Role{
				{Name: "Server", Count: -1},
			},
			wantErr: true,
		},
		{
			name: "pre-filled counter rejected",
			roles: []domain.Role{
				{Name: "Server", Count: 2, Filled: 1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoles(tt.roles)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRoles)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
