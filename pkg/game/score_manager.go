package game

import (
	"fmt"
	"log"

	"github.com/gonewx/hoppy/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	scoreObject   = "scores"
	scoreProperty = "record"
)

// ScoreRecord 持久化的成绩记录
type ScoreRecord struct {
	Best  int `yaml:"best"`  // 历史最高分
	Games int `yaml:"games"` // 已结束的局数
}

// ScoreManager 最高分管理器
// 负责最高分的加载、更新和保存
type ScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	record       ScoreRecord
}

// OpenStorage 打开 gdata 存储
// 失败时返回错误，调用方应以 nil 管理器继续运行（仅内存记录）
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(appName); err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return manager, nil
}

// NewScoreManager 创建最高分管理器并尝试加载已保存的记录
//
// 参数：
//   - gdataManager: 可为 nil（降级模式，最高分只保存在内存中）
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，从 0 开始
		log.Printf("[ScoreManager] Warning: Failed to load score record: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载记录
// gdataManager 为 nil 或记录不存在时使用空记录
func (sm *ScoreManager) Load() error {
	sm.record = ScoreRecord{}
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load score record: %w", err)
	}

	var loaded ScoreRecord
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal score record: %w", err)
	}
	if loaded.Best < 0 {
		loaded.Best = 0
	}
	sm.record = loaded
	log.Printf("[ScoreManager] Loaded best score %d", sm.record.Best)
	return nil
}

// Save 保存记录到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	return nil
}

// Best 返回历史最高分
func (sm *ScoreManager) Best() int {
	return sm.record.Best
}

// Games 返回已结束的局数
func (sm *ScoreManager) Games() int {
	return sm.record.Games
}

// Submit 提交一局的最终分数
// 返回 true 表示刷新了最高分
func (sm *ScoreManager) Submit(score int) bool {
	sm.record.Games++
	if score <= sm.record.Best {
		return false
	}
	sm.record.Best = score
	log.Printf("[ScoreManager] New best score: %d", score)
	return true
}
