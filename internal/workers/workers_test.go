// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type mockWorker struct {
	starts int
	stops  int
}

func (m *mockWorker) Start(context.Context) { m.starts++ }
func (m *mockWorker) Stop()                 { m.stops++ }

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.starts != 1 {
			t.Errorf("worker[%d]: expected starts=1, got %d", i, w.starts)
		}
	}
	if ws.Len() != 3 {
		t.Errorf("expected Len()=3, got %d", ws.Len())
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Stop()

	expected := []int{3, 2, 1}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Start(context.Context) {}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, o.id)
}
