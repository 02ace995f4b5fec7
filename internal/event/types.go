// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"   // Новая волна началась
	WaveEnded     EventType = "WaveEnded"     // Волна закончилась
	HostileKilled EventType = "HostileKilled" // Враг уничтожен
	PlayerDied    EventType = "PlayerDied"
	SkillUsed     EventType = "SkillUsed" // Навык активирован
)

// WavePayload accompanies WaveStarted and WaveEnded. The player-state
// fields are only filled at wave end.
type WavePayload struct {
	Wave          int
	PlayerName    string
	PlayerHealth  float64
	PlayerStamina float64
	Spawned       int
	Remaining     int
	Duration      float64
	SkillUsage    map[string]int
}

// SessionPayload accompanies PlayerDied with the final session snapshot.
type SessionPayload struct {
	PlayerName    string
	WavesCleared  int
	HostileKills  int
	Duration      float64
	PlayerHealth  float64
	PlayerStamina float64
}

// SkillPayload accompanies SkillUsed.
type SkillPayload struct {
	Name string
	Slot int
}
