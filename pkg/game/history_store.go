package game

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryStore 会话历史记录
//
// 每局游戏结束时写入一行摘要，主菜单用它显示最佳成绩。
// 存储是 SQLite 文件；路径为空时使用内存数据库（不持久化）。
type HistoryStore struct {
	db *sql.DB
}

// OpenHistoryStore 打开（必要时创建）历史记录数据库
func OpenHistoryStore(path string) (*HistoryStore, error) {
	dsn := "file::memory:"
	if path != "" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	// 内存数据库每个连接独立，必须固定为单连接
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		elapsed_seconds REAL NOT NULL,
		ticks INTEGER NOT NULL,
		spawned INTEGER NOT NULL,
		removed INTEGER NOT NULL,
		peak_population INTEGER NOT NULL,
		final_count INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init history schema: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Close 关闭数据库
func (h *HistoryStore) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

// Record 写入一局游戏的摘要
func (h *HistoryStore) Record(sum SessionSummary) error {
	_, err := h.db.Exec(`INSERT INTO sessions
		(started_at, elapsed_seconds, ticks, spawned, removed, peak_population, final_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sum.StartedAt.UTC().Format(time.RFC3339Nano),
		sum.ElapsedSeconds,
		int64(sum.Ticks),
		sum.Spawned,
		sum.Removed,
		sum.PeakPopulation,
		sum.FinalCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// Best 返回峰值人口最高的一局（同分取时间更长的）
// 没有任何记录时 ok 为 false
func (h *HistoryStore) Best() (SessionSummary, bool, error) {
	row := h.db.QueryRow(`SELECT started_at, elapsed_seconds, ticks, spawned, removed, peak_population, final_count
		FROM sessions ORDER BY peak_population DESC, elapsed_seconds DESC, id ASC LIMIT 1`)
	sum, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionSummary{}, false, nil
	}
	if err != nil {
		return SessionSummary{}, false, fmt.Errorf("failed to query best session: %w", err)
	}
	return sum, true, nil
}

// Recent 返回最近的 limit 局记录（新的在前）
func (h *HistoryStore) Recent(limit int) ([]SessionSummary, error) {
	rows, err := h.db.Query(`SELECT started_at, elapsed_seconds, ticks, spawned, removed, peak_population, final_count
		FROM sessions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// rowScanner 兼容 *sql.Row 与 *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (SessionSummary, error) {
	var (
		sum       SessionSummary
		startedAt string
		ticks     int64
	)
	if err := row.Scan(&startedAt, &sum.ElapsedSeconds, &ticks, &sum.Spawned, &sum.Removed, &sum.PeakPopulation, &sum.FinalCount); err != nil {
		return SessionSummary{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return SessionSummary{}, fmt.Errorf("bad started_at %q: %w", startedAt, err)
	}
	sum.StartedAt = t
	sum.Ticks = uint64(ticks)
	return sum, nil
}
