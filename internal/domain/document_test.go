package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_PreservesNumbers(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"basePrice": 12345678901234567890, "unitNo": "A-1"}`))
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"basePrice": 12345678901234567890, "unitNo": "A-1"}`, string(out))
}

func TestDecodeDocument_Rejects(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"text"`, `{"a":1}{"b":2}`, `{broken`, ``} {
		_, err := DecodeDocument([]byte(body))
		assert.Error(t, err, body)
	}
}

func TestDocument_WithoutID(t *testing.T) {
	doc := Document{IDField: "abc", "name": "Asha"}
	stripped := doc.WithoutID()

	assert.NotContains(t, stripped, IDField)
	assert.Contains(t, doc, IDField)
}

func TestEmployeeDirectory_DisplayName(t *testing.T) {
	dir := NewEmployeeDirectory([]EmployeeRecord{
		{Name: "Asha", Code: "E01"},
		{Name: "Duplicate", Code: "E01"},
		{Name: "Ravi", Code: "E02"},
	})

	assert.Equal(t, "Asha", dir.DisplayName("E01"))
	assert.Equal(t, "Ravi", dir.DisplayName("E02"))
	assert.Equal(t, "E99", dir.DisplayName("E99"))
}
