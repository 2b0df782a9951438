package game

import "log"

// FrameLoop 一个由宿主帧回调驱动的逻辑循环
//
// 循环本身不持有定时器：场景在每帧调用 Tick，只有 Running 时才推进时钟。
// Start 和 Stop 可重复调用，多次 Start 不会产生第二个循环。
type FrameLoop struct {
	name    string
	running bool
	started bool    // 是否启动过
	elapsed float64 // 首次启动以来运行的总时间（毫秒）
	frames  int     // 运行的总帧数
}

// NewFrameLoop 创建一个未启动的循环
func NewFrameLoop(name string) *FrameLoop {
	return &FrameLoop{name: name}
}

// Start 启动循环
// 返回 true 表示本次调用真正启动了循环（之前未在运行）
func (l *FrameLoop) Start() bool {
	if l.running {
		return false
	}
	l.running = true
	if !l.started {
		l.started = true
		log.Printf("[FrameLoop] %s loop started", l.name)
	}
	return true
}

// Stop 停止循环，时钟停止推进
func (l *FrameLoop) Stop() {
	l.running = false
}

// Running 返回循环是否在运行
func (l *FrameLoop) Running() bool {
	return l.running
}

// Started 返回循环是否曾经启动过
func (l *FrameLoop) Started() bool {
	return l.started
}

// Tick 推进一帧
// 返回 true 表示本帧需要执行循环体
func (l *FrameLoop) Tick(deltaMs float64) bool {
	if !l.running {
		return false
	}
	l.elapsed += deltaMs
	l.frames++
	return true
}

// ElapsedMs 返回循环运行的总时间（毫秒），作为动画和生成延迟的时间戳
func (l *FrameLoop) ElapsedMs() float64 {
	return l.elapsed
}

// Frames 返回循环运行的总帧数
func (l *FrameLoop) Frames() int {
	return l.frames
}
