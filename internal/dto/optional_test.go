package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_DistinguishesMissingNullAndValue(t *testing.T) {
	var req UpdateEntityProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"failed","design_notes":null}`), &req))

	assert.True(t, req.Status.Set)
	require.NotNil(t, req.Status.Value)
	assert.Equal(t, "failed", *req.Status.Value)

	assert.True(t, req.DesignNotes.Set)
	assert.Nil(t, req.DesignNotes.Value)

	assert.False(t, req.GeneratedImageUrl.Set)
	assert.False(t, req.ImageGenerated.Set)
	assert.True(t, req.HasFields())
}

func TestField_UnknownKeysDoNotCount(t *testing.T) {
	var req UpdateEntityProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"entity_id":3,"color":"red"}`), &req))

	assert.False(t, req.HasFields())
}

func TestField_RejectsWrongType(t *testing.T) {
	var req UpdateEntityProductRequest
	assert.Error(t, json.Unmarshal([]byte(`{"image_generated":"yes"}`), &req))
}
