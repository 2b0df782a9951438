//go:build mobile

package utils

// IsMobile 移动端构建时恒为 true，HUD 据此显示触屏操作提示
func IsMobile() bool {
	return true
}
