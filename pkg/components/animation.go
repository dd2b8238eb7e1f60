package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 管理基于帧序列的精灵动画
// 支持多个命名剪辑（如 "left_walk" / "right_walk"），同一时间播放其中一个
type AnimationComponent struct {
	Clips        map[string][]*ebiten.Image // 剪辑名 → 帧序列
	Current      string                     // 当前剪辑名
	FrameSpeed   float64                    // 每帧之间的延迟时间(秒)
	FrameCounter float64                    // 当前帧计时器(秒)
	CurrentFrame int                        // 当前显示的帧索引(0-based)
	Playing      bool                       // 是否正在播放（false = 停在当前帧）
}

// SetClip 切换到指定剪辑
// 切换到不同剪辑时从第0帧重新开始；切换到当前剪辑则不打断播放
func (a *AnimationComponent) SetClip(name string) {
	if a.Current == name {
		return
	}
	a.Current = name
	a.CurrentFrame = 0
	a.FrameCounter = 0
}
