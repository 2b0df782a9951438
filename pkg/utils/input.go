// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HopSignal 存储当前帧的跳跃输入
// 空格键、鼠标左键和触摸都可以触发跳跃，松开决定跳跃高度
type HopSignal struct {
	// 是否有跳跃输入刚刚按下
	Pressed bool
	// 是否有跳跃输入刚刚松开
	Released bool
}

// HopPoller 读取一帧的跳跃输入（测试中可替换为假实现）
type HopPoller func() HopSignal

// PollHopSignal 获取当前帧的跳跃输入
// 同时支持键盘、鼠标和触摸输入
func PollHopSignal() HopSignal {
	return HopSignal{
		Pressed:  hopJustPressed(),
		Released: hopJustReleased(),
	}
}

func hopJustPressed() bool {
	// 首先检查触摸输入（移动设备）
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func hopJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
