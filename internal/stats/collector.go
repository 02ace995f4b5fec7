// Package stats persists session and wave outcomes to CSV for post-hoc
// analysis. The collector listens on the event bus; the simulation never
// performs I/O itself.
package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-incantato/internal/event"
)

var gamesHeader = []string{"play_id", "timestamp", "player", "waves_cleared", "kills", "duration_s", "final_health", "final_stamina"}
var wavesHeader = []string{"play_id", "player", "wave", "hp", "stamina", "spawned", "remaining", "duration_s", "skill_usage"}

// Collector appends one row per finished wave and one per finished
// session. Each process run gets a fresh play id so waves can be joined
// back to their session.
type Collector struct {
	log       *zap.Logger
	gamesPath string
	wavesPath string
	playID    string
}

func NewCollector(gamesPath, wavesPath string, log *zap.Logger) *Collector {
	return &Collector{
		log:       log,
		gamesPath: gamesPath,
		wavesPath: wavesPath,
		playID:    uuid.NewString(),
	}
}

// PlayID identifies the current session in both files.
func (c *Collector) PlayID() string { return c.playID }

// NewSession rotates the play id. Called when the player restarts without
// relaunching.
func (c *Collector) NewSession() {
	c.playID = uuid.NewString()
}

// OnEvent implements event.Listener. Persistence failures are logged and
// swallowed; losing a stats row never interrupts play.
func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		p, ok := e.Data.(event.WavePayload)
		if !ok {
			return
		}
		if err := c.appendRow(c.wavesPath, wavesHeader, []string{
			c.playID,
			p.PlayerName,
			strconv.Itoa(p.Wave),
			fmtFloat(p.PlayerHealth),
			fmtFloat(p.PlayerStamina),
			strconv.Itoa(p.Spawned),
			strconv.Itoa(p.Remaining),
			fmtFloat(p.Duration),
			formatUsage(p.SkillUsage),
		}); err != nil {
			c.log.Error("failed to persist wave row", zap.Int("wave", p.Wave), zap.Error(err))
		}
	case event.PlayerDied:
		p, ok := e.Data.(event.SessionPayload)
		if !ok {
			return
		}
		if err := c.appendRow(c.gamesPath, gamesHeader, []string{
			c.playID,
			time.Now().UTC().Format(time.RFC3339),
			p.PlayerName,
			strconv.Itoa(p.WavesCleared),
			strconv.Itoa(p.HostileKills),
			fmtFloat(p.Duration),
			fmtFloat(p.PlayerHealth),
			fmtFloat(p.PlayerStamina),
		}); err != nil {
			c.log.Error("failed to persist session row", zap.String("player", p.PlayerName), zap.Error(err))
		}
	}
}

func (c *Collector) appendRow(path string, header, row []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}

	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// SessionRow is one finished session read back for the stats screen.
type SessionRow struct {
	PlayID       string
	Timestamp    string
	Player       string
	WavesCleared int
	Kills        int
	Duration     float64
}

// RecentSessions returns up to n most recent sessions, newest first. A
// missing file yields an empty slice.
func (c *Collector) RecentSessions(n int) ([]SessionRow, error) {
	f, err := os.Open(c.gamesPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.gamesPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.gamesPath, err)
	}

	var rows []SessionRow
	for i, rec := range records {
		if i == 0 || len(rec) < 6 {
			continue
		}
		waves, _ := strconv.Atoi(rec[3])
		kills, _ := strconv.Atoi(rec[4])
		dur, _ := strconv.ParseFloat(rec[5], 64)
		rows = append(rows, SessionRow{
			PlayID:       rec[0],
			Timestamp:    rec[1],
			Player:       rec[2],
			WavesCleared: waves,
			Kills:        kills,
			Duration:     dur,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Timestamp > rows[j].Timestamp })
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// fmtFloat keeps two decimals so the CSV stays readable in a spreadsheet.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatUsage flattens the per-wave usage map into "name:count" pairs in
// stable order.
func formatUsage(usage map[string]int) string {
	names := make([]string, 0, len(usage))
	for name := range usage {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ";"
		}
		out += fmt.Sprintf("%s:%d", name, usage[name])
	}
	return out
}
