package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `125000.5`, 125000.5},
		{"quoted number", `"125000.5"`, 125000.5},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage", `"abc"`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a.Float64())
		})
	}
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-15"`), &d))
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`"2024-06-15T08:30:00Z"`), &d))
	assert.Equal(t, 15, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDateMarshal(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, time.June, 5))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-05"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateMonthKey(t *testing.T) {
	assert.Equal(t, "2024-06", NewDate(2024, time.June, 15).MonthKey())
}

func TestValidCategoryType(t *testing.T) {
	assert.True(t, ValidCategoryType(TypeIncome))
	assert.True(t, ValidCategoryType(TypeExpense))
	assert.False(t, ValidCategoryType("transfer"))
	assert.False(t, ValidCategoryType(""))
}

func TestValidSourceType(t *testing.T) {
	assert.True(t, ValidSourceType(SourceEWallet))
	assert.True(t, ValidSourceType(SourceCash))
	assert.False(t, ValidSourceType("crypto"))
}

func TestGenerateID(t *testing.T) {
	tx := Transaction{}
	tx.GenerateID()
	assert.NotEmpty(t, tx.ID)

	other := Transaction{}
	other.GenerateID()
	assert.NotEqual(t, tx.ID, other.ID)
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.True(t, p.SidebarExpanded)
	assert.Equal(t, ThemeLight, p.Theme)
}
