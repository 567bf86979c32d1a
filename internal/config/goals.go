package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/fdg312/health-tracker/internal/state"
)

// GoalsFile — частичное переопределение целей из файла. Незаданные поля
// не меняют текущие цели.
type GoalsFile struct {
	Calories       *int `toml:"calories" yaml:"calories" json:"calories"`
	ProteinG       *int `toml:"protein_g" yaml:"protein_g" json:"protein_g"`
	CarbsG         *int `toml:"carbs_g" yaml:"carbs_g" json:"carbs_g"`
	FatG           *int `toml:"fat_g" yaml:"fat_g" json:"fat_g"`
	HydrationMl    *int `toml:"hydration_ml" yaml:"hydration_ml" json:"hydration_ml"`
	WeeklyWorkouts *int `toml:"weekly_workouts" yaml:"weekly_workouts" json:"weekly_workouts"`
}

// LoadGoalsFile reads a goals override file; the format is chosen by extension
// (.toml, .yaml/.yml, .json).
func LoadGoalsFile(path string) (*GoalsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read goals file: %w", err)
	}

	var g GoalsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &g); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported goals file extension %q (use .toml, .yaml or .json)", filepath.Ext(path))
	}
	return &g, nil
}

// Apply накладывает заданные поля на base и приводит результат к допустимым границам.
func (g *GoalsFile) Apply(base state.Goals) state.Goals {
	if g == nil {
		return base
	}
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	out := base
	set(&out.Calories, g.Calories)
	set(&out.ProteinG, g.ProteinG)
	set(&out.CarbsG, g.CarbsG)
	set(&out.FatG, g.FatG)
	set(&out.HydrationMl, g.HydrationMl)
	set(&out.WeeklyWorkouts, g.WeeklyWorkouts)
	return state.ClampGoals(out)
}

// IsEmpty reports whether the file sets no goal at all.
func (g *GoalsFile) IsEmpty() bool {
	return g == nil || (g.Calories == nil && g.ProteinG == nil && g.CarbsG == nil &&
		g.FatG == nil && g.HydrationMl == nil && g.WeeklyWorkouts == nil)
}
