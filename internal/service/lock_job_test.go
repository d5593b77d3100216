// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package service_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mzolotarev/keywarden/internal/mock"
	"github.com/mzolotarev/keywarden/internal/service"
)

func TestIdleCheckJob_DrivesCheckIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	machine := mock.NewMockLockMachine(ctrl)

	ticked := make(chan struct{})
	var once sync.Once
	machine.EXPECT().CheckIdle().Do(func() {
		once.Do(func() { close(ticked) })
	}).AnyTimes()

	job := service.NewIdleCheckJob(machine, 5*time.Millisecond)
	job.Run()
	defer job.Stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("idle check was never invoked")
	}
}

func TestIdleCheckJob_StopHaltsTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	machine := mock.NewMockLockMachine(ctrl)

	var calls atomic.Int64
	machine.EXPECT().CheckIdle().Do(func() { calls.Add(1) }).AnyTimes()

	job := service.NewIdleCheckJob(machine, time.Millisecond)
	job.Run()

	for calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	job.Stop()

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestIdleCheckJob_StopWithoutRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := service.NewIdleCheckJob(mock.NewMockLockMachine(ctrl), time.Second)

	// Must not panic or block.
	job.Stop()
	job.Stop()
}

func TestIdleCheckJob_RestartReplacesPreviousRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	machine := mock.NewMockLockMachine(ctrl)
	machine.EXPECT().CheckIdle().AnyTimes()

	job := service.NewIdleCheckJob(machine, time.Millisecond)
	job.Run()
	job.Run()
	job.Stop()
}
