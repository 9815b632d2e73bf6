package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Barcode API", doc.Info.Title)
	assert.Equal(t, "Barcode history, status and moderation.", doc.Info.Description)

	for path, method := range map[string]string{
		"/barcode/history":     "get",
		"/barcode/status/{id}": "get",
		"/barcode/{id}":        "delete",
		"/admin/barcodes":      "get",
		"/admin/barcodes/{id}": "delete",
		"/admin/status/{id}":   "patch",
	} {
		require.Contains(t, doc.Paths, path)
		assert.Contains(t, doc.Paths[path], method, path)
	}
}
