package base

import (
	"context"
	"fmt"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/global"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const cleanerTimeout = 10 * time.Second

type Cleaner struct {
	cleaners       []Callable
	mu             sync.Mutex
	once           sync.Once
	cleaning       bool
	loggerShutdown Callable
	logger         LoggerInterface
	exit           func(code int)
}

func NewCleaner(logger LoggerInterface) *Cleaner {
	return &Cleaner{
		cleaners:       make([]Callable, 0),
		loggerShutdown: logger.ShutdownCallback(),
		logger:         logger,
		exit:           syscall.Exit,
	}
}

func (c *Cleaner) Add(callable Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		c.logger.Debug("Cleaner is already shutting down, ignoring new cleaner")
		return
	}
	c.cleaners = append(c.cleaners, callable)
	c.logger.DebugF("Adding cleaner #%d (%T)", len(c.cleaners), callable)
}

// Clean runs the registered callbacks last-in first-out, then flushes the logger and exits.
// Only the first call does anything.
func (c *Cleaner) Clean() {
	c.once.Do(c.clean)
}

func (c *Cleaner) clean() {
	c.mu.Lock()
	c.cleaning = true
	cleanersCopy := make([]Callable, len(c.cleaners))
	copy(cleanersCopy, c.cleaners)
	c.mu.Unlock()

	c.logger.DebugF("Starting cleanup of %d registered functions", len(cleanersCopy))

	failed := 0
	utils.ReverseForEach(cleanersCopy, func(idx int, callback Callable) {
		c.logger.DebugF("Invoking cleaner #%d (%T)", idx+1, callback)
		timeoutCtx, cancelFunc := context.WithTimeout(context.Background(), cleanerTimeout)
		defer cancelFunc()
		if err := callback.Invoke(timeoutCtx); err != nil {
			c.logger.ErrorF("Cleaner #%d (%T) failed: %v", idx+1, callback, err)
			failed++
		}
	})

	if failed > 0 {
		c.logger.ErrorF("%d of %d cleaners failed", failed, len(cleanersCopy))
	} else {
		c.logger.Debug("All cleaners executed successfully")
	}
	c.logger.Info("Cleanup finished, server offline")

	if c.loggerShutdown != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.loggerShutdown.Invoke(shutdownCtx); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
		}
	}
	if c.exit != nil {
		c.exit(0)
	}
}

func (c *Cleaner) Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
		c.logger.Info("Received interrupt signal, shutting down")

		c.Clean()
	}()
}
