package metadata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildSelectorLabels(t *testing.T) {
	tests := map[string]struct {
		componentName string
		instanceName  string
		want          map[string]string
	}{
		"server component": {
			componentName: "server",
			instanceName:  "survival",
			want: map[string]string{
				LabelAppName:      "server",
				LabelAppInstance:  "server-survival",
				LabelAppComponent: "server",
			},
		},
		"empty instance name": {
			componentName: "server",
			instanceName:  "",
			want: map[string]string{
				LabelAppName:      "server",
				LabelAppInstance:  "server-",
				LabelAppComponent: "server",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := BuildSelectorLabels(tc.componentName, tc.instanceName)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildSelectorLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildStandardLabels(t *testing.T) {
	got := BuildStandardLabels("server", "p")
	want := map[string]string{
		LabelAppName:      "server",
		LabelAppInstance:  "server-p",
		LabelAppComponent: "server",
		LabelAppManagedBy: ManagedByMinecraft,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildStandardLabels() mismatch (-want +got):\n%s", diff)
	}

	// The selector must be a subset of the standard labels.
	for k, v := range BuildSelectorLabels("server", "p") {
		if got[k] != v {
			t.Errorf("standard label %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestMergeLabels(t *testing.T) {
	tests := map[string]struct {
		standardLabels map[string]string
		customLabels   map[string]string
		want           map[string]string
	}{
		"standard labels override custom labels": {
			standardLabels: map[string]string{
				LabelAppName:      "server",
				LabelAppComponent: "server",
			},
			customLabels: map[string]string{
				LabelAppName: "something-else",
				"team":       "games",
			},
			want: map[string]string{
				LabelAppName:      "server",
				LabelAppComponent: "server",
				"team":            "games",
			},
		},
		"nil custom labels": {
			standardLabels: map[string]string{LabelAppName: "server"},
			customLabels:   nil,
			want:           map[string]string{LabelAppName: "server"},
		},
		"both nil": {
			want: map[string]string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := MergeLabels(tc.standardLabels, tc.customLabels)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeLabels_DoesNotMutateInputs(t *testing.T) {
	standard := map[string]string{LabelAppName: "server"}
	custom := map[string]string{"team": "games"}

	_ = MergeLabels(standard, custom)

	if len(standard) != 1 || len(custom) != 1 {
		t.Errorf("inputs mutated: standard=%v custom=%v", standard, custom)
	}
}

func TestSetAnnotation(t *testing.T) {
	t.Run("nil map is allocated", func(t *testing.T) {
		got := SetAnnotation(nil, AnnotationServingCertSecretName, "p-minecraft-tls")
		want := map[string]string{AnnotationServingCertSecretName: "p-minecraft-tls"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SetAnnotation() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("existing annotations are kept", func(t *testing.T) {
		existing := map[string]string{"owner": "ops"}
		got := SetAnnotation(existing, AnnotationServingCertSecretName, "p-minecraft-tls")
		want := map[string]string{
			"owner":                         "ops",
			AnnotationServingCertSecretName: "p-minecraft-tls",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SetAnnotation() mismatch (-want +got):\n%s", diff)
		}
	})
}
