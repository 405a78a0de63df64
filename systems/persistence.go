package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// RunRecord is one finished run as stored on disk
type RunRecord struct {
	ID             string    `json:"id"`
	Seed           int64     `json:"seed"`
	Level          string    `json:"level"`
	Difficulty     string    `json:"difficulty,omitempty"`
	Ticks          int       `json:"ticks"`
	Kills          int       `json:"kills"`
	FinalBossPhase int       `json:"finalBossPhase"`
	Won            bool      `json:"won"`
	Time           time.Time `json:"time"`
}

// Store is the item storage runs are kept in. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const (
	runsItem = "runs"
	// maxRuns bounds the history; the oldest records are dropped first.
	maxRuns = 100
)

// ErrNoStore is returned when persistence was never initialised.
var ErrNoStore = errors.New("persistence not initialised")

var runStore Store

// InitPersistence opens the gdata store for run records.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "amoebash",
	})
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	runStore = m
	return nil
}

// SetStore replaces the run store, for tests and alternative backends.
func SetStore(s Store) {
	runStore = s
}

// NewRunRecord snapshots the current session.
func NewRunRecord(ecs *ecs.ECS, level, difficulty string) RunRecord {
	rec := RunRecord{
		ID:         uuid.NewString(),
		Level:      level,
		Difficulty: difficulty,
		Time:       time.Now().UTC(),
	}
	if s := GetSession(ecs.World); s != nil {
		rec.Seed = s.Seed
		rec.Ticks = s.Tick
		rec.Kills = s.Kills
		rec.FinalBossPhase = s.FinalBossPhase
		rec.Won = s.Won
	}
	return rec
}

// LoadRuns returns the stored runs, oldest first. A store without any
// runs yields an empty list.
func LoadRuns() ([]RunRecord, error) {
	if runStore == nil {
		return nil, ErrNoStore
	}

	data, err := runStore.LoadItem(runsItem)
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var runs []RunRecord
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("parse runs: %w", err)
	}
	return runs, nil
}

// SaveRun appends rec to the stored history.
func SaveRun(rec RunRecord) error {
	runs, err := LoadRuns()
	if err != nil {
		return err
	}

	runs = append(runs, rec)
	if len(runs) > maxRuns {
		runs = runs[len(runs)-maxRuns:]
	}

	data, err := json.Marshal(runs)
	if err != nil {
		return fmt.Errorf("serialize runs: %w", err)
	}
	if err := runStore.SaveItem(runsItem, data); err != nil {
		return fmt.Errorf("save runs: %w", err)
	}

	log.Info("run saved", "id", rec.ID, "won", rec.Won, "ticks", rec.Ticks, "kills", rec.Kills)
	return nil
}
