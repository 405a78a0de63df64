package systems

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/amoebash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore mirrors gdata: a missing item loads as empty data.
type memStore struct {
	items map[string][]byte
	fail  error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.fail != nil {
		return s.fail
	}
	s.items[key] = data
	return nil
}

func useStore(t *testing.T, s Store) {
	t.Helper()
	prev := runStore
	SetStore(s)
	t.Cleanup(func() { runStore = prev })
}

func TestSaveAndLoadRuns(t *testing.T) {
	useStore(t, newMemStore())
	e := newTestECS(t)
	factory.CreatePlayer(e, 100, 100)

	s := session(t, e)
	s.Tick = 900
	s.Kills = 7
	s.FinalBossPhase = 2
	s.Won = true

	rec := NewRunRecord(e, "default", "hard")
	require.NoError(t, SaveRun(rec))

	runs, err := LoadRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	got := runs[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, int64(1), got.Seed)
	assert.Equal(t, "default", got.Level)
	assert.Equal(t, "hard", got.Difficulty)
	assert.Equal(t, 900, got.Ticks)
	assert.Equal(t, 7, got.Kills)
	assert.Equal(t, 2, got.FinalBossPhase)
	assert.True(t, got.Won)
	assert.True(t, rec.Time.Equal(got.Time))
}

func TestLoadRunsEmpty(t *testing.T) {
	useStore(t, newMemStore())

	runs, err := LoadRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunHistoryIsBounded(t *testing.T) {
	useStore(t, newMemStore())

	for i := 0; i < maxRuns+5; i++ {
		require.NoError(t, SaveRun(RunRecord{ID: fmt.Sprint(i)}))
	}

	runs, err := LoadRuns()
	require.NoError(t, err)
	require.Len(t, runs, maxRuns)
	assert.Equal(t, "5", runs[0].ID, "oldest records go first")
	assert.Equal(t, fmt.Sprint(maxRuns+4), runs[len(runs)-1].ID)
}

func TestPersistenceErrors(t *testing.T) {
	useStore(t, nil)
	_, err := LoadRuns()
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, SaveRun(RunRecord{}), ErrNoStore)

	broken := newMemStore()
	broken.fail = errors.New("disk full")
	useStore(t, broken)
	assert.ErrorIs(t, SaveRun(RunRecord{}), broken.fail)

	corrupt := newMemStore()
	corrupt.items[runsItem] = []byte("{not json")
	useStore(t, corrupt)
	_, err = LoadRuns()
	assert.Error(t, err)
}
