package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
	"github.com/PPKK-Project/Tlan/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafetyDocument_Entries_FullDocument(t *testing.T) {
	raw := `{
		"response": {
			"header": {"resultCode": "00", "resultMsg": "NORMAL SERVICE"},
			"body": {"items": {"item": [
				{"country_nm": "일본", "country_iso_alp2": "JP", "alarm_lvl": 1}
			]}}
		}
	}`
	var doc dto.SafetyDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	entries, ok := doc.Entries()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.SafetyEntry{CountryName: "일본", CountryISO: "JP", AlarmLevel: 1}, entries[0])

	code, msg := doc.ResultStatus()
	assert.Equal(t, "00", code)
	assert.Equal(t, "NORMAL SERVICE", msg)
}

func TestSafetyDocument_Entries_MissingLevels(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "response without body", raw: `{"response": {"header": {"resultCode": "22"}}}`},
		{name: "body without items", raw: `{"response": {"body": {}}}`},
		{name: "items without item", raw: `{"response": {"body": {"items": {}}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var doc dto.SafetyDocument
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &doc))

			entries, ok := doc.Entries()
			assert.False(t, ok)
			assert.Nil(t, entries)
		})
	}
}

func TestSafetyDocument_ResultStatus_MissingHeader(t *testing.T) {
	var doc dto.SafetyDocument
	require.NoError(t, json.Unmarshal([]byte(`{"response": {}}`), &doc))

	code, _ := doc.ResultStatus()
	assert.Equal(t, "UNKNOWN", code)
}

func TestSafetyDocument_ResultStatus_NilDocument(t *testing.T) {
	var doc *dto.SafetyDocument

	code, _ := doc.ResultStatus()
	assert.Equal(t, "UNKNOWN", code)

	entries, ok := doc.Entries()
	assert.False(t, ok)
	assert.Nil(t, entries)
}
