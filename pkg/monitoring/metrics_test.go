package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorsRegistered(t *testing.T) {
	if got := len(Collectors()); got != 4 {
		t.Fatalf("expected 4 collectors, got %d", got)
	}
}

func TestMetricNamingConvention(t *testing.T) {
	for _, c := range Collectors() {
		for _, desc := range describe(c) {
			name := descField(desc, "fqName")
			if !strings.HasPrefix(name, "minecraft_operator_") {
				t.Errorf("metric %q does not start with minecraft_operator_ prefix", name)
			}
			if descField(desc, "help") == "" {
				t.Errorf("metric %q has empty help string", name)
			}
		}
	}
}

func TestMetricLabels(t *testing.T) {
	tests := map[string]struct {
		collector  prometheus.Collector
		wantLabels []string
	}{
		"minecraftInfo": {
			collector:  minecraftInfo,
			wantLabels: []string{"name", "namespace", "phase"},
		},
		"reconcileTotal": {
			collector:  reconcileTotal,
			wantLabels: []string{"result"},
		},
		"reconcileDuration": {
			collector:  reconcileDuration,
			wantLabels: []string{"result"},
		},
		"childApplyTotal": {
			collector:  childApplyTotal,
			wantLabels: []string{"kind", "operation"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			descs := describe(tc.collector)
			if len(descs) != 1 {
				t.Fatalf("expected 1 descriptor, got %d", len(descs))
			}
			descStr := descs[0].String()
			for _, label := range tc.wantLabels {
				if !strings.Contains(descStr, label) {
					t.Errorf("metric %s missing label %q in descriptor: %s", name, label, descStr)
				}
			}
		})
	}
}

func describe(c prometheus.Collector) []*prometheus.Desc {
	ch := make(chan *prometheus.Desc, 10)
	c.Describe(ch)
	close(ch)

	var out []*prometheus.Desc
	for d := range ch {
		out = append(out, d)
	}
	return out
}

// descField pulls a quoted field from the Desc string representation.
// Format: Desc{fqName: "minecraft_...", help: "...", ...}
func descField(desc *prometheus.Desc, field string) string {
	s := desc.String()
	prefix := field + ": \""
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(s[start:], "\"")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}
