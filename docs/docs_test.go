package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "/", parsed.BasePath)
	require.Contains(t, parsed.Paths, "/adminDashboard")
	require.Contains(t, parsed.Paths["/answers/{id}/rate"], "patch")
	require.Contains(t, parsed.Paths["/answers/{id}/rate"], "post")
}
