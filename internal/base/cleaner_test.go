package base

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

type recordCallback struct {
	name   string
	record *[]string
	err    error
}

func (r *recordCallback) Invoke(_ context.Context) error {
	*r.record = append(*r.record, r.name)
	return r.err
}

func TestCleanerRunsInReverseOrder(t *testing.T) {
	logger := NewLoggerWithWriter(io.Discard, false)
	logger.Init(true)
	cleaner := NewCleaner(logger)
	exitCode := -1
	cleaner.exit = func(code int) { exitCode = code }

	record := make([]string, 0)
	cleaner.Add(&recordCallback{name: "database", record: &record})
	cleaner.Add(&recordCallback{name: "scheduler", record: &record, err: errors.New("boom")})
	cleaner.Add(&recordCallback{name: "http", record: &record})

	cleaner.Clean()
	cleaner.Clean()
	cleaner.Add(&recordCallback{name: "late", record: &record})

	assert.Equal(t, []string{"http", "scheduler", "database"}, record)
	assert.Equal(t, 0, exitCode)
}
