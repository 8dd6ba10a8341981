//go:build !android

package utils

// EnsureStorageDir 确保存储目录存在（非 Android 平台的空实现）
// gdata 在非 Android 平台上会自动创建存储目录，历史数据库目录由 HistoryStore 自行创建
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 获取存储根目录
// 非 Android 平台返回空字符串，由调用者决定默认位置
func GetStoragePath() string {
	return ""
}
