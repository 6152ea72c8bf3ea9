package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalexanderII/todo-railway/models"
)

func TestDecodeItemPatchPresence(t *testing.T) {
	p, err := DecodeItemPatch([]byte(`{"title":"a","done":false,"description":null}`))
	require.NoError(t, err)

	assert.Equal(t, Some("a"), p.Title)
	assert.Equal(t, Some(false), p.Done)
	assert.False(t, p.Description.Set)
	assert.False(t, p.Date.Set)
}

func TestDecodeItemPatchEmptyBody(t *testing.T) {
	p, err := DecodeItemPatch(nil)
	require.NoError(t, err)
	assert.Equal(t, ItemPatch{}, p)

	p, err = DecodeItemPatch([]byte("  {} "))
	require.NoError(t, err)
	assert.Equal(t, ItemPatch{}, p)
}

func TestDecodeItemPatchDates(t *testing.T) {
	want := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2024-01-01T12:30:00Z"`, want},
		{"rfc3339 offset", `"2024-01-01T14:30:00+02:00"`, want},
		{"js toJSON", `"2024-01-01T12:30:00.000Z"`, want},
		{"local iso", `"2024-01-01T12:30:00"`, want},
		{"space separated", `"2024-01-01 12:30:00"`, want},
		{"minutes only", `"2024-01-01T12:30"`, want},
		{"date only", `"2024-01-01"`, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1704112200000`, want},
		{"last encodable instant", `"9999-12-31T23:59:59Z"`, time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)},
		{"year zero", `"0000-01-01"`, time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeItemPatch([]byte(`{"date":` + tt.raw + `}`))
			require.NoError(t, err)
			require.True(t, p.Date.Set)
			assert.True(t, tt.want.Equal(p.Date.Value), "got %v", p.Date.Value)
		})
	}
}

func TestDecodeItemPatchDone(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"1"`, true},
		{`0`, false},
		{`1`, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := DecodeItemPatch([]byte(`{"done":` + tt.raw + `}`))
			require.NoError(t, err)
			assert.Equal(t, Some(tt.want), p.Done)
		})
	}
}

func TestDecodeItemPatchRejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"array body", `[1,2]`, "body"},
		{"not json", `title=x`, "body"},
		{"numeric title", `{"title":5}`, "title"},
		{"blank title", `{"title":"   "}`, "title"},
		{"long title", `{"title":"` + strings.Repeat("x", maxTitleLength+1) + `"}`, "title"},
		{"object description", `{"description":{}}`, "description"},
		{"bad date", `{"date":"next tuesday"}`, "date"},
		{"fractional millis", `{"date":1.5}`, "date"},
		{"bool date", `{"date":true}`, "date"},
		{"millis past year 9999", `{"date":253402300800000}`, "date"},
		{"millis before year 0", `{"date":-62198755200000}`, "date"},
		{"offset rolls past year 9999", `{"date":"9999-12-31T23:00:00-05:00"}`, "date"},
		{"word done", `{"done":"maybe"}`, "done"},
		{"two done", `{"done":2}`, "done"},
		{"list done", `{"done":[]}`, "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeItemPatch([]byte(tt.body))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestDecodeItemPatchCollectsAllErrors(t *testing.T) {
	_, err := DecodeItemPatch([]byte(`{"title":1,"date":"x","done":"y"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Error(), "date:")
}

func TestApplyOnlyTouchesSetFields(t *testing.T) {
	date := time.Date(2024, 3, 4, 5, 6, 7, 891234567, time.UTC)
	item := &models.Item{Title: "t", Description: "d", Done: true, UserID: "u"}

	ItemPatch{Date: Some(date)}.Apply(item)

	assert.Equal(t, "t", item.Title)
	assert.Equal(t, "d", item.Description)
	assert.True(t, item.Done)
	assert.Equal(t, "u", item.UserID)
	assert.Equal(t, models.NormalizeTime(date), item.Date)
}
