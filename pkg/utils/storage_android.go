//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保成绩存储目录存在并可写
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会预先创建子目录，
// 因此在打开存储前先创建 {package}/{dirName}。
func EnsureStorageDir(dirName string) error {
	dir, err := StoragePath(dirName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	marker := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}

// StoragePath 返回 Android 上的存储目录
func StoragePath(dirName string) (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}
	// cmdline 以 NUL 分隔，第一个字段是包名
	pkg := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if pkg == "" {
		return "", fmt.Errorf("failed to detect Android package: empty cmdline")
	}
	return filepath.Join("/data/data", pkg, dirName), nil
}
