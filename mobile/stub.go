//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口（mobile.go、embed.go）依赖复制进来的资源，
// 只在 -tags mobile 时编译；普通构建只保留这个空函数。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
