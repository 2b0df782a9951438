//go:build !mobile

// Package mobile 的桌面端占位
// 绑定入口在 mobile.go 中，只在 -tags mobile 下编译。
package mobile

// Dummy 保证桌面构建时包不为空
func Dummy() {}
