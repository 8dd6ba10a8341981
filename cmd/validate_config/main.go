// validate_config 校验藤壶配置文件
//
// 用法：
//
//	go run ./cmd/validate_config [file ...]
//
// 不带参数时校验 data/barnacle.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/barnacles/pkg/config"
)

func main() {
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"data/barnacle.yaml"}
	}

	failed := 0
	for _, path := range files {
		if !validate(path) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件无效\n", failed)
		os.Exit(1)
	}
}

// validate 加载并打印单个配置文件的关键参数
func validate(path string) bool {
	cfg, err := config.LoadBarnacleConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		return false
	}

	fmt.Printf("✅ %s\n", path)
	fmt.Printf("   生成间隔: %.2fs, 附着周期: %.2fs, 附着时长: %.2fs\n",
		cfg.SpawnInterval, cfg.AttachingPeriod, cfg.AttachedDuration)
	fmt.Printf("   材质数量: %d, 生成体积: %v - %v, 种子: %d\n",
		cfg.MaterialCycle, cfg.SpawnVolume.Min, cfg.SpawnVolume.Max, cfg.Seed)
	return true
}
