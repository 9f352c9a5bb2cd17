package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestSetMinecraftInfo(t *testing.T) {
	t.Cleanup(func() { minecraftInfo.Reset() })

	SetMinecraftInfo("survival", "default", "Active")

	if val := gaugeValue(t, minecraftInfo, "survival", "default", "Active"); val != 1 {
		t.Errorf("expected info gauge to be 1, got %f", val)
	}

	// Phase change should clean up old label set
	SetMinecraftInfo("survival", "default", "Failed")

	if val := gaugeValue(t, minecraftInfo, "survival", "default", "Failed"); val != 1 {
		t.Errorf("expected info gauge for Failed to be 1, got %f", val)
	}
	if old := gaugeValue(t, minecraftInfo, "survival", "default", "Active"); old != 0 {
		t.Error("old phase label set should have been cleaned up")
	}
}

func TestDeleteMinecraftInfo(t *testing.T) {
	t.Cleanup(func() { minecraftInfo.Reset() })

	SetMinecraftInfo("survival", "default", "Active")
	SetMinecraftInfo("creative", "default", "Active")
	DeleteMinecraftInfo("survival", "default")

	if got := testCollectorCount(t, minecraftInfo); got != 1 {
		t.Errorf("expected 1 remaining series, got %d", got)
	}
}

func TestRecordReconcile(t *testing.T) {
	t.Cleanup(func() {
		reconcileTotal.Reset()
		reconcileDuration.Reset()
	})

	RecordReconcile(nil, 20*time.Millisecond)
	RecordReconcile(nil, 30*time.Millisecond)
	RecordReconcile(errors.New("apply failed"), 10*time.Millisecond)

	if got := counterValue(t, reconcileTotal, "success"); got != 2 {
		t.Errorf("expected success counter=2, got %f", got)
	}
	if got := counterValue(t, reconcileTotal, "error"); got != 1 {
		t.Errorf("expected error counter=1, got %f", got)
	}
	if got := testCollectorCount(t, reconcileDuration); got != 2 {
		t.Errorf("expected 2 histogram series, got %d", got)
	}
}

func TestRecordChildApply(t *testing.T) {
	t.Cleanup(func() { childApplyTotal.Reset() })

	RecordChildApply("Deployment", "created")
	RecordChildApply("Deployment", "unchanged")
	RecordChildApply("Deployment", "unchanged")
	RecordChildApply("Service", "error")

	tests := map[string]struct {
		kind, operation string
		want            float64
	}{
		"deployment created":   {kind: "Deployment", operation: "created", want: 1},
		"deployment unchanged": {kind: "Deployment", operation: "unchanged", want: 2},
		"service error":        {kind: "Service", operation: "error", want: 1},
		"untouched":            {kind: "Route", operation: "created", want: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := counterValue(t, childApplyTotal, tc.kind, tc.operation); got != tc.want {
				t.Errorf("counter(%s,%s) = %f, want %f", tc.kind, tc.operation, got, tc.want)
			}
		})
	}
}

// --- helpers ---

func gaugeValue(t *testing.T, vec *prometheus.GaugeVec, labels ...string) float64 {
	t.Helper()
	g, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}
	m := &dto.Metric{}
	if err := g.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func testCollectorCount(t *testing.T, c prometheus.Collector) int {
	t.Helper()
	ch := make(chan prometheus.Metric, 16)
	c.Collect(ch)
	close(ch)
	n := 0
	for range ch {
		n++
	}
	return n
}
