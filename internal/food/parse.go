package food

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dtroode/nutrilog-server/internal/model"
)

// ErrUnsupportedFormat is returned for reference files that are neither JSON nor CSV.
var ErrUnsupportedFormat = errors.New("unsupported food reference format")

var csvHeader = []string{"name", "calories", "protein", "carbs", "fiber"}

type jsonNutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

// ParseJSON reads an object mapping food names to their nutrients:
//
//	{"rice": {"calories": 130, "protein": 2.7, "carbs": 28, "fiber": 0.4}}
func ParseJSON(r io.Reader) ([]model.Food, error) {
	var raw map[string]jsonNutrients
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding foods json: %w", err)
	}

	foods := make([]model.Food, 0, len(raw))
	for name, n := range raw {
		f, err := newFood(name, model.Nutrients(n))
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	return foods, nil
}

// ParseCSV reads rows of name,calories,protein,carbs,fiber after a header row.
func ParseCSV(r io.Reader) ([]model.Food, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("invalid header length: expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) != csvHeader[i] {
			return nil, fmt.Errorf("invalid header: expected %s at position %d, got %s", csvHeader[i], i, h)
		}
	}

	var foods []model.Food
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		values := make([]float64, 4)
		for i := range values {
			values[i], err = strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %s of %q: %w", csvHeader[i+1], record[0], err)
			}
		}

		f, err := newFood(record[0], model.Nutrients{
			Calories: values[0],
			Protein:  values[1],
			Carbs:    values[2],
			Fiber:    values[3],
		})
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	return foods, nil
}

// Decode parses r according to the extension of name (.json or .csv).
func Decode(name string, r io.Reader) ([]model.Food, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ParseJSON(r)
	case ".csv":
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// LoadFile reads and decodes a reference file from disk.
func LoadFile(path string) ([]model.Food, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening foods file: %w", err)
	}
	defer f.Close()

	return Decode(path, f)
}

func newFood(name string, n model.Nutrients) (model.Food, error) {
	key := model.NormalizeFoodName(name)
	if key == "" {
		return model.Food{}, errors.New("food with empty name")
	}
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fiber < 0 {
		return model.Food{}, fmt.Errorf("food %q has negative nutrient values", name)
	}

	return model.Food{Name: key, Nutrients: n}, nil
}
