package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityScore(t *testing.T) {
	cases := []struct {
		name  string
		nulls map[string]int
		want  float64
	}{
		{"no nulls", map[string]int{"a": 0, "b": 0}, 100},
		{"one null", map[string]int{"a": 1}, 90},
		{"ten points per null", map[string]int{"a": 3, "b": 2}, 50},
		{"floored at zero", map[string]int{"a": 50}, 0},
		{"empty checks", map[string]int{}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := QualityReport{NullChecks: tc.nulls}
			assert.Equal(t, tc.want, r.Score())
		})
	}
}

func TestQualityReportJSONSchema(t *testing.T) {
	r := QualityReport{
		Timestamp: "2024-03-01T00:00:00Z",
		RecordCounts: RecordCounts{
			Customers: 10,
			Products:  20,
			Orders:    30,
		},
		NullChecks:       map[string]int{"customers_missing_id": 0},
		DataQualityScore: 100,
	}

	data, err := json.Marshal(&r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "timestamp")
	assert.Contains(t, decoded, "record_counts")
	assert.Contains(t, decoded, "null_checks")
	assert.Contains(t, decoded, "data_quality_score")

	counts := decoded["record_counts"].(map[string]interface{})
	assert.Equal(t, float64(10), counts["customers"])
	assert.Equal(t, float64(30), counts["orders"])
}
