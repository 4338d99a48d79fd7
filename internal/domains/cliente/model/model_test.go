package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentacar/internal/domains/cliente/model"
)

func TestDefaultActivo(t *testing.T) {
	tests := []struct {
		name     string
		clientes []model.Cliente
		wantID   string
		wantOK   bool
	}{
		{
			name: "first active wins",
			clientes: []model.Cliente{
				{ID: "cli-1", Activo: false},
				{ID: "cli-2", Activo: true},
				{ID: "cli-3", Activo: true},
			},
			wantID: "cli-2",
			wantOK: true,
		},
		{
			name: "no active falls back to the first",
			clientes: []model.Cliente{
				{ID: "cli-1", Activo: false},
				{ID: "cli-2", Activo: false},
			},
			wantID: "cli-1",
			wantOK: true,
		},
		{
			name:   "empty list has no default",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliente, ok := model.DefaultActivo(tt.clientes)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, cliente.ID)
		})
	}
}
