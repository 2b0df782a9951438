//go:build !android

package utils

// EnsureStorageDir 非 Android 平台由 gdata 自行创建目录
func EnsureStorageDir(dirName string) error {
	return nil
}

// StoragePath 非 Android 平台返回空路径，由 gdata 决定位置
func StoragePath(dirName string) (string, error) {
	return "", nil
}
