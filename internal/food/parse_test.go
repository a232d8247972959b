package food

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/nutrilog-server/internal/model"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	foods, err := ParseJSON(strings.NewReader(`{"Oats": {"calories": 389, "protein": 16.9, "carbs": 66, "fiber": 10.6}}`))
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, model.Food{Name: "oats", Nutrients: model.Nutrients{Calories: 389, Protein: 16.9, Carbs: 66, Fiber: 10.6}}, foods[0])
}

func TestParseJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "malformed", input: `{"oats": `, wantErr: "decoding foods json"},
		{name: "negative", input: `{"oats": {"calories": -1}}`, wantErr: "negative"},
		{name: "empty name", input: `{" ": {"calories": 1}}`, wantErr: "empty name"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseJSON(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCSV(t *testing.T) {
	t.Parallel()

	input := "name,calories,protein,carbs,fiber\nlentils, 116, 9, 20, 7.9\nQuinoa,120,4.4,21.3,2.8\n"
	foods, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "lentils", foods[0].Name)
	assert.Equal(t, model.Nutrients{Calories: 116, Protein: 9, Carbs: 20, Fiber: 7.9}, foods[0].Nutrients)
	assert.Equal(t, "quinoa", foods[1].Name)
}

func TestParseCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "reading header"},
		{name: "short header", input: "name,calories\n", wantErr: "invalid header length"},
		{name: "wrong header", input: "food,calories,protein,carbs,fiber\n", wantErr: "invalid header"},
		{name: "bad number", input: "name,calories,protein,carbs,fiber\nrice,abc,1,1,1\n", wantErr: "parsing calories"},
		{name: "ragged row", input: "name,calories,protein,carbs,fiber\nrice,1,1\n", wantErr: "reading record"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Decode("foods.yaml", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "foods.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rice": {"calories": 130}}`), 0o600))

	foods, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, foods, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
