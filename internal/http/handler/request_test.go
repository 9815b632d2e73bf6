package handler

import (
	"encoding/json"
	"testing"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditedFilter(t *testing.T) {
	assert.Nil(t, editedFilter(""))

	for raw, want := range map[string]bool{
		"true":  true,
		"false": false,
		"TRUE":  false,
		"1":     false,
		"yes":   false,
	} {
		got := editedFilter(raw)
		require.NotNil(t, got, raw)
		assert.Equal(t, want, *got, raw)
	}
}

func TestTypeFilter(t *testing.T) {
	assert.Nil(t, typeFilter(""))
	got := typeFilter("QR")
	require.NotNil(t, got)
	assert.Equal(t, model.BarcodeTypeQR, *got)
}

func TestSortField(t *testing.T) {
	assert.Equal(t, repository.SortByUpdatedAt, sortField("updatedAt"))
	assert.Equal(t, repository.SortByCreatedAt, sortField("createdAt"))
	assert.Equal(t, repository.SortByCreatedAt, sortField(""))
}

func TestFlexBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`"True"`, true, false},
		{`"0"`, false, false},
		{`"1"`, true, false},
		{`"no"`, false, true},
		{`1`, false, true},
		{`[]`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var b flexBool
			err := json.Unmarshal([]byte(tt.in), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(b))
		})
	}
}

func TestValidationMessages(t *testing.T) {
	limit := 500
	err := validate.Struct(&historyParams{Limit: &limit})
	assert.Equal(t, "limit must be at most 100", validationMessage(err))

	err = validate.Struct(&historyParams{Type: "NOPE"})
	assert.Equal(t, "type must be a valid barcode type", validationMessage(err))

	err = validate.Struct(&historyParams{SortBy: "id"})
	assert.Equal(t, "sortBy must be one of: createdAt updatedAt", validationMessage(err))

	assert.NoError(t, validate.Struct(&historyParams{}))
}
