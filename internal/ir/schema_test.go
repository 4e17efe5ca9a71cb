package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Validate_Valid(t *testing.T) {
	schema := Schema{
		Entities:  []string{"Person", "Organization"},
		Relations: []string{"works_at", "employs"},
		ValidationSchema: map[string][]string{
			"Person":       {"works_at"},
			"Organization": {"employs"},
		},
	}
	assert.NoError(t, schema.Validate())
}

func TestSchema_Validate_EmptyEntitiesRejected(t *testing.T) {
	schema := Schema{
		Entities:  []string{},
		Relations: []string{"works_at"},
	}
	assert.Error(t, schema.Validate())
}

func TestSchema_Validate_EmptyRelationsRejected(t *testing.T) {
	schema := Schema{
		Entities:  []string{"Person"},
		Relations: nil,
	}
	assert.Error(t, schema.Validate())
}

func TestSchema_Validate_UndeclaredRelationRejected(t *testing.T) {
	schema := Schema{
		Entities:  []string{"Person"},
		Relations: []string{"works_at"},
		ValidationSchema: map[string][]string{
			"Person": {"works_at", "lives_in"},
		},
	}

	err := schema.Validate()
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), `"lives_in"`)
}

func TestSchema_Validate_EmptyValidationMapAllowed(t *testing.T) {
	schema := Schema{
		Entities:  []string{"Person"},
		Relations: []string{"works_at"},
	}
	assert.NoError(t, schema.Validate())
}

func TestSchema_JSONRoundTrip(t *testing.T) {
	schema := Schema{
		Entities:  []string{"Person", "Location"},
		Relations: []string{"lives_in"},
		ValidationSchema: map[string][]string{
			"Person":   {"lives_in"},
			"Location": {},
		},
	}

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entities"`)
	assert.Contains(t, string(data), `"validation_schema"`)

	var decoded Schema
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, schema, decoded)
}
