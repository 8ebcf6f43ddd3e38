// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// blockingService counts starts and runs until cancelled, or fails the first
// failFirst times.
type blockingService struct {
	name      string
	failFirst int32
	starts    atomic.Int32
}

func (b *blockingService) Serve(ctx context.Context) error {
	if b.starts.Add(1) <= b.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (b *blockingService) String() string { return b.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("root supervisor is nil")
	}
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
	}

	custom, _ := NewSupervisorTree(quietLogger(), TreeConfig{FailureBackoff: time.Second})
	if custom.config.FailureBackoff != time.Second || custom.config.FailureThreshold != 5 {
		t.Errorf("partial config = %+v", custom.config)
	}
}

func TestSupervisorTree_RunsBothLayers(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}

	refresh := &blockingService{name: "country-refresh", failFirst: 2}
	httpSvc := &blockingService{name: "http-server"}
	tree.AddSyncService(refresh)
	tree.AddAPIService(httpSvc)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("tree stopped with %v", err)
	}

	if n := refresh.starts.Load(); n < 3 {
		t.Errorf("refresh service started %d times, want restarts after failures", n)
	}
	if n := httpSvc.starts.Load(); n != 1 {
		t.Errorf("http service started %d times; sync-layer failures must not restart it", n)
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatal(err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}
