// barnacle_sim 无窗口运行藤壶生命周期模拟，逐 tick 输出人口计数
//
// 用法：
//
//	go run ./cmd/barnacle_sim -ticks 20 -dt 1.0 -seed 42 -click 6:1,6:2 -spawn-ticks 10
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/game"
	"github.com/decker502/barnacles/pkg/systems"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	configPath  = flag.String("config", "", "藤壶配置文件路径（默认使用内置默认值）")
	ticks       = flag.Int("ticks", 20, "运行的 tick 数")
	deltaTime   = flag.Float64("dt", 1.0, "每个 tick 的时间步长（秒）")
	seed        = flag.Int64("seed", 1, "随机种子")
	interval    = flag.Float64("interval", 0, "覆盖生成间隔（秒），0 表示使用配置值")
	clicks      = flag.String("click", "", "点击事件，格式 tick:entity[,tick:entity...]")
	spawnTicks  = flag.Int("spawn-ticks", 0, "只在前 N 个 tick 生成藤壶，0 表示一直生成")
	historyPath = flag.String("history", "", "结束时把会话摘要写入该数据库")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "barnacle_sim: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := config.LoadBarnacleConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.Seed = *seed

	schedule, err := parseClicks(*clicks)
	if err != nil {
		return err
	}

	session := game.NewSession()
	sim, err := systems.NewBarnacleSimulation(ecs.NewEntityManager(), session, cfg, systems.SimulationOptions{
		SpawnInterval: *interval,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%6s %10s %8s %10s\n", "tick", "elapsed", "spawned", "attached")
	for tick := 1; tick <= *ticks; tick++ {
		if *spawnTicks > 0 && tick == *spawnTicks+1 {
			sim.SpawnSystem().Disable()
		}
		for _, target := range schedule[tick] {
			sim.PushEvents(components.InteractionEvent{Kind: components.InteractionClicked, Target: target})
		}

		result := sim.Tick(*deltaTime)
		for _, tickErr := range result.Errors {
			fmt.Fprintf(out, "tick %d: %v\n", tick, tickErr)
		}
		fmt.Fprintf(out, "%6d %10.2f %8d %10d\n", tick, session.ElapsedSeconds, len(result.Spawned), result.Population)
	}

	summary := session.Summary()
	fmt.Fprintf(out, "spawned=%d removed=%d peak=%d final=%d stale=%d\n",
		summary.Spawned, summary.Removed, summary.PeakPopulation, summary.FinalCount, session.StaleReferences)

	if *historyPath != "" {
		store, err := game.OpenHistoryStore(*historyPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Record(summary); err != nil {
			return err
		}
	}
	return nil
}

// parseClicks 解析 "tick:entity" 列表，返回按 tick 分组的点击目标
func parseClicks(list string) (map[int][]ecs.EntityID, error) {
	schedule := make(map[int][]ecs.EntityID)
	if list == "" {
		return schedule, nil
	}

	start := 0
	for i := 0; i <= len(list); i++ {
		if i < len(list) && list[i] != ',' {
			continue
		}
		var tick int
		var target uint64
		if _, err := fmt.Sscanf(list[start:i], "%d:%d", &tick, &target); err != nil {
			return nil, fmt.Errorf("invalid click %q: %w", list[start:i], err)
		}
		schedule[tick] = append(schedule[tick], ecs.EntityID(target))
		start = i + 1
	}
	return schedule, nil
}
