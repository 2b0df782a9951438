package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 中创建 gdata 管理器
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestScoreManagerDegradedMode(t *testing.T) {
	sm := NewScoreManager(nil)
	if sm.Best() != 0 {
		t.Errorf("Best = %d, want 0", sm.Best())
	}

	if !sm.Submit(3) {
		t.Error("first positive score should be a new best")
	}
	if sm.Submit(2) {
		t.Error("lower score must not replace the best")
	}
	if sm.Best() != 3 || sm.Games() != 2 {
		t.Errorf("Best = %d, Games = %d, want 3 and 2", sm.Best(), sm.Games())
	}

	// 降级模式保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode: %v", err)
	}
}

func TestScoreManagerPersistence(t *testing.T) {
	manager := openTestStorage(t, "hoppy_test_scores")

	sm := NewScoreManager(manager)
	sm.Submit(7)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewScoreManager(manager)
	if reloaded.Best() != 7 {
		t.Errorf("reloaded Best = %d, want 7", reloaded.Best())
	}
	if reloaded.Games() != 1 {
		t.Errorf("reloaded Games = %d, want 1", reloaded.Games())
	}
}

func TestScoreManagerCorruptedRecord(t *testing.T) {
	manager := openTestStorage(t, "hoppy_test_scores_corrupt")
	if err := manager.SaveObjectProp(scoreObject, scoreProperty, []byte("best: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := NewScoreManager(manager)
	if sm.Best() != 0 {
		t.Errorf("corrupted record should fall back to 0, got %d", sm.Best())
	}
}

func TestAudioManagerNilSafe(t *testing.T) {
	var am *AudioManager
	if am.PlaySound(SoundHop) {
		t.Error("nil AudioManager must not play")
	}
	am.SetEnabled(true)

	am = NewAudioManager(NewResourceManager(nil, nil, nil), true, 1.5)
	if am.Volume() != 1 {
		t.Errorf("Volume = %v, want clamped to 1", am.Volume())
	}
	if am.PlaySound(SoundCollect) {
		t.Error("PlaySound should fail for an unloaded sound")
	}
}
