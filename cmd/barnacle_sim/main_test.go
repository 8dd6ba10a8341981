package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/barnacles/pkg/ecs"
)

func TestParseClicks(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    map[int][]ecs.EntityID
		wantErr bool
	}{
		{"empty", "", map[int][]ecs.EntityID{}, false},
		{"single", "6:1", map[int][]ecs.EntityID{6: {1}}, false},
		{"same tick", "6:1,6:2,8:3", map[int][]ecs.EntityID{6: {1, 2}, 8: {3}}, false},
		{"malformed", "6-1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClicks(tt.list)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseClicks(%q) error = %v, wantErr %v", tt.list, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseClicks(%q) = %v, want %v", tt.list, got, tt.want)
			}
		})
	}
}

// setFlags 临时覆盖命令行参数，测试结束后恢复
func setFlags(t *testing.T, tickCount int, dt float64, spawnUntil int, clickList string) {
	t.Helper()
	oldTicks, oldDt, oldSpawn, oldClicks := *ticks, *deltaTime, *spawnTicks, *clicks
	t.Cleanup(func() {
		*ticks, *deltaTime, *spawnTicks, *clicks = oldTicks, oldDt, oldSpawn, oldClicks
	})
	*ticks, *deltaTime, *spawnTicks, *clicks = tickCount, dt, spawnUntil, clickList
}

func TestRun_SpawnTicksStopsSpawning(t *testing.T) {
	setFlags(t, 12, 1.0, 3, "")

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "spawned=3 removed=0 peak=3 final=3 stale=0"
	if !strings.Contains(out.String(), want) {
		t.Errorf("summary missing %q in output:\n%s", want, out.String())
	}
}

func TestRun_ClickRemovesBarnacle(t *testing.T) {
	setFlags(t, 8, 1.0, 0, "2:1,2:99")

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// tick 2 点击第 1 只（已生成）和不存在的 99；到 tick 8 只有第 2、3 只附着
	want := "spawned=8 removed=1 peak=2 final=2 stale=1"
	if !strings.Contains(out.String(), want) {
		t.Errorf("summary missing %q in output:\n%s", want, out.String())
	}
}
