// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
// 参数接受 fs.FS，桌面端传入 embed.FS，测试可传入 fstest.MapFS
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// route 根据路径前缀选择正确的文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func route(path string) (fs.FS, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	path = normalize(path)
	fsys, err := route(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(path)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	fsys, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// FS 返回一个按前缀路由的只读文件系统
// 供 ResourceManager 等只依赖 fs.FS 的组件使用
func FS() fs.FS {
	return routedFS{}
}

type routedFS struct{}

func (routedFS) Open(name string) (fs.File, error) {
	return Open(name)
}
