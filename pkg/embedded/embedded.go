// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile/embed.go。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 桌面端只嵌入 data/（默认配置），图片从磁盘读取；
// 移动端额外嵌入 assets/（图片），通过 InitAssets 注册。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	assetsFS    fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// InitAssets 注册嵌入的图片资源（仅移动端）
func InitAssets(assets fs.FS) {
	assetsFS = assets
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// HasAssets 是否注册了嵌入的图片资源
func HasAssets() bool {
	return assetsFS != nil
}

// resolve 根据路径前缀选择文件系统并返回标准化路径
// 路径必须以 "assets/" 或 "data/" 开头
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	case strings.HasPrefix(path, "assets/"):
		if assetsFS == nil {
			return nil, "", fmt.Errorf("no embedded assets registered: %s", path)
		}
		return assetsFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开嵌入文件
func Open(path string) (fs.File, error) {
	fsys, p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(p)
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
}

// Exists 检查文件是否存在于嵌入资源中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Sub 返回指定目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	fsys, p, err := resolve(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, strings.TrimSuffix(p, "/"))
}

// reset 恢复未初始化状态（测试用）
func reset() {
	dataFS = nil
	assetsFS = nil
	initialized = false
}
