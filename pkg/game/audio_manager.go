package game

import (
	"log"
)

// 音效资源ID（与 resources.yaml 中的 sounds 对应）
const (
	SoundHop     = "SOUND_HOP"
	SoundCollect = "SOUND_COLLECT"
	SoundLose    = "SOUND_LOSE"
)

// AudioManager 音效管理器
// 统一管理游戏中所有音效的播放。
// nil 的 *AudioManager 是合法的：所有方法都不做任何事，测试和无音频环境直接传 nil。
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（提供已解码的播放器）
	enabled         bool             // 音效开关
	volume          float64          // 音量 0.0 ~ 1.0
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - rm: ResourceManager 实例
//   - enabled: 是否启用音效
//   - volume: 音量值 (0.0 ~ 1.0)，超出范围时被截断
func NewAudioManager(rm *ResourceManager, enabled bool, volume float64) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		enabled:         enabled,
		volume:          clampVolume(volume),
	}
}

// PlaySound 从头播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || !am.enabled || am.resourceManager == nil {
		return false
	}

	player := am.resourceManager.GetSound(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetEnabled 开关音效
func (am *AudioManager) SetEnabled(enabled bool) {
	if am == nil {
		return
	}
	am.enabled = enabled
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	if am == nil {
		return 0
	}
	return am.volume
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
