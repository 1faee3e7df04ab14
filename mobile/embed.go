//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要先把 fig/ 和 data/game.yaml 复制到此目录（见 mobile.go）。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/game.yaml
var dataFS embed.FS
