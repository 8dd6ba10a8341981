package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/barnacles/pkg/components"
	"gopkg.in/yaml.v3"
)

// 默认生命周期参数
const (
	DefaultSpawnInterval    = 1.0 // 每秒生成一只藤壶
	DefaultAttachingPeriod  = 0.1 // 附着期间材质轮换周期
	DefaultAttachedDuration = 5.0 // 附着完成所需时间
	DefaultMaterialCycle    = 3   // 附着期间轮换的材质数量
)

// ErrEmptySpawnVolume 生成体积的某个维度为空
var ErrEmptySpawnVolume = errors.New("spawn volume must have positive extent")

// SpawnVolume 藤壶生成体积
// 每个坐标在 [Min, Max) 内独立均匀采样
type SpawnVolume struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// Normalize 将体积内的坐标映射到 [0,1)^3
// 体积某维为空时该维返回 0
func (v SpawnVolume) Normalize(x, y, z float64) (float64, float64, float64) {
	p := [3]float64{x, y, z}
	for axis := 0; axis < 3; axis++ {
		extent := v.Max[axis] - v.Min[axis]
		if extent <= 0 {
			p[axis] = 0
			continue
		}
		p[axis] = (p[axis] - v.Min[axis]) / extent
	}
	return p[0], p[1], p[2]
}

// BarnacleConfig 藤壶生命周期配置
type BarnacleConfig struct {
	SpawnInterval    float64     `yaml:"spawnInterval"`    // 生成间隔（秒）
	AttachingPeriod  float64     `yaml:"attachingPeriod"`  // 附着计时器周期（秒，重复）
	AttachedDuration float64     `yaml:"attachedDuration"` // 附着完成时长（秒，一次性）
	MaterialCycle    int         `yaml:"materialCycle"`    // 材质轮换数量
	SpawnVolume      SpawnVolume `yaml:"spawnVolume"`      // 生成体积
	Seed             int64       `yaml:"seed"`             // 随机种子，0 表示使用时间种子
}

// DefaultBarnacleConfig 返回默认配置（单位立方体生成体积）
func DefaultBarnacleConfig() *BarnacleConfig {
	return &BarnacleConfig{
		SpawnInterval:    DefaultSpawnInterval,
		AttachingPeriod:  DefaultAttachingPeriod,
		AttachedDuration: DefaultAttachedDuration,
		MaterialCycle:    DefaultMaterialCycle,
		SpawnVolume: SpawnVolume{
			Min: [3]float64{0, 0, 0},
			Max: [3]float64{1, 1, 1},
		},
	}
}

// LoadBarnacleConfig 从 YAML 文件加载藤壶配置
// 文件中缺省的字段保留默认值；filePath 为空时直接返回默认配置
func LoadBarnacleConfig(filePath string) (*BarnacleConfig, error) {
	cfg := DefaultBarnacleConfig()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read barnacle config file: %w", err)
	}

	return ParseBarnacleConfig(data)
}

// ParseBarnacleConfig 解析 YAML 内容（用于嵌入的默认配置）
func ParseBarnacleConfig(data []byte) (*BarnacleConfig, error) {
	cfg := DefaultBarnacleConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse barnacle config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid barnacle config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
// 非正数时长返回 components.ErrInvalidDuration（配置错误，启动时直接失败）
func (c *BarnacleConfig) Validate() error {
	durations := []struct {
		name  string
		value float64
	}{
		{"spawnInterval", c.SpawnInterval},
		{"attachingPeriod", c.AttachingPeriod},
		{"attachedDuration", c.AttachedDuration},
	}
	for _, d := range durations {
		if !(d.value > 0) {
			return fmt.Errorf("%s: %w (got %v)", d.name, components.ErrInvalidDuration, d.value)
		}
	}

	if c.MaterialCycle < 1 {
		return fmt.Errorf("materialCycle must be >= 1, got %d", c.MaterialCycle)
	}

	for axis := 0; axis < 3; axis++ {
		if !(c.SpawnVolume.Max[axis] > c.SpawnVolume.Min[axis]) {
			return fmt.Errorf("axis %d [%v, %v): %w", axis,
				c.SpawnVolume.Min[axis], c.SpawnVolume.Max[axis], ErrEmptySpawnVolume)
		}
	}

	return nil
}
