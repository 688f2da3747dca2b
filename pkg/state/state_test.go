package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutListDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(InstanceRecord{InstanceID: "i1", PID: 100, StartedAt: 1}))
	require.NoError(t, s.Put(InstanceRecord{InstanceID: "i2", PID: 200, StartCmd: "./run", StartedAt: 2}))

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, s.Delete("i1"))
	records, err = s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "i2", records[0].InstanceID)
	assert.Equal(t, 200, records[0].PID)

	// Deleting an absent record is fine.
	assert.NoError(t, s.Delete("gone"))
}

func TestPutReplaces(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(InstanceRecord{InstanceID: "i1", PID: 100}))
	require.NoError(t, s.Put(InstanceRecord{InstanceID: "i1", PID: 300}))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 300, records[0].PID)
}

func TestReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(InstanceRecord{InstanceID: "i1", PID: 42}))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 42, records[0].PID)
}
