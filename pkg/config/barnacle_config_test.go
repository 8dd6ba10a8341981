package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/barnacles/pkg/components"
)

func TestLoadBarnacleConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errIs       error
		errContains string
		validate    func(*testing.T, *BarnacleConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
spawnInterval: 0.5
attachingPeriod: 0.2
attachedDuration: 3.0
materialCycle: 4
spawnVolume:
  min: [-1, 0, 0]
  max: [1, 2, 1]
seed: 42
`,
			validate: func(t *testing.T, cfg *BarnacleConfig) {
				if cfg.SpawnInterval != 0.5 {
					t.Errorf("expected spawnInterval = 0.5, got %v", cfg.SpawnInterval)
				}
				if cfg.AttachedDuration != 3.0 {
					t.Errorf("expected attachedDuration = 3.0, got %v", cfg.AttachedDuration)
				}
				if cfg.MaterialCycle != 4 {
					t.Errorf("expected materialCycle = 4, got %d", cfg.MaterialCycle)
				}
				if cfg.SpawnVolume.Min[0] != -1 || cfg.SpawnVolume.Max[1] != 2 {
					t.Errorf("unexpected spawn volume %+v", cfg.SpawnVolume)
				}
				if cfg.Seed != 42 {
					t.Errorf("expected seed = 42, got %d", cfg.Seed)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "spawnInterval: 2.0\n",
			validate: func(t *testing.T, cfg *BarnacleConfig) {
				if cfg.SpawnInterval != 2.0 {
					t.Errorf("expected spawnInterval = 2.0, got %v", cfg.SpawnInterval)
				}
				if cfg.AttachingPeriod != DefaultAttachingPeriod {
					t.Errorf("expected default attachingPeriod, got %v", cfg.AttachingPeriod)
				}
				if cfg.SpawnVolume.Max != [3]float64{1, 1, 1} {
					t.Errorf("expected default spawn volume, got %+v", cfg.SpawnVolume)
				}
			},
		},
		{
			name:        "zero spawn interval",
			yamlContent: "spawnInterval: 0\n",
			wantErr:     true,
			errIs:       components.ErrInvalidDuration,
			errContains: "spawnInterval",
		},
		{
			name:        "negative attached duration",
			yamlContent: "attachedDuration: -5\n",
			wantErr:     true,
			errIs:       components.ErrInvalidDuration,
			errContains: "attachedDuration",
		},
		{
			name:        "material cycle too small",
			yamlContent: "materialCycle: 0\n",
			wantErr:     true,
			errContains: "materialCycle",
		},
		{
			name: "empty spawn volume",
			yamlContent: `
spawnVolume:
  min: [0, 1, 0]
  max: [1, 1, 1]
`,
			wantErr: true,
			errIs:   ErrEmptySpawnVolume,
		},
		{
			name:        "invalid yaml",
			yamlContent: "spawnInterval: [oops\n",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "barnacle.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			cfg, err := LoadBarnacleConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errIs != nil && !errors.Is(err, tt.errIs) {
					t.Errorf("expected error wrapping %v, got %v", tt.errIs, err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadBarnacleConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadBarnacleConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpawnInterval != DefaultSpawnInterval || cfg.AttachedDuration != DefaultAttachedDuration {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadBarnacleConfig_MissingFile(t *testing.T) {
	_, err := LoadBarnacleConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

// TestLoadBarnacleConfig_ShippedFile 确保仓库自带的配置文件有效
func TestLoadBarnacleConfig_ShippedFile(t *testing.T) {
	cfg, err := LoadBarnacleConfig("../../data/barnacle.yaml")
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	if cfg.MaterialCycle != DefaultMaterialCycle {
		t.Errorf("expected materialCycle = %d, got %d", DefaultMaterialCycle, cfg.MaterialCycle)
	}
}

func TestDefaultBarnacleConfigValid(t *testing.T) {
	if err := DefaultBarnacleConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSpawnVolumeNormalize(t *testing.T) {
	volume := SpawnVolume{
		Min: [3]float64{-1, 0, 2},
		Max: [3]float64{1, 4, 2},
	}

	x, y, z := volume.Normalize(0, 1, 2)
	if x != 0.5 || y != 0.25 {
		t.Errorf("Normalize = (%v, %v), want (0.5, 0.25)", x, y)
	}
	if z != 0 {
		t.Errorf("empty axis should normalize to 0, got %v", z)
	}
}

func TestParseBarnacleConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseBarnacleConfig([]byte("spawnInterval: 0.5\n"))
	if err != nil {
		t.Fatalf("ParseBarnacleConfig failed: %v", err)
	}
	if cfg.SpawnInterval != 0.5 || cfg.AttachedDuration != DefaultAttachedDuration {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
