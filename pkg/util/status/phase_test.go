package status

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
)

func TestComputeStatus(t *testing.T) {
	tests := map[string]struct {
		err  error
		want minecraftv1alpha1.MinecraftStatus
	}{
		"success is active without message": {
			want: minecraftv1alpha1.MinecraftStatus{Phase: minecraftv1alpha1.PhaseActive},
		},
		"error is failed with message": {
			err: errors.New("deployments.apps is forbidden"),
			want: minecraftv1alpha1.MinecraftStatus{
				Phase:   minecraftv1alpha1.PhaseFailed,
				Message: ptr.To("deployments.apps is forbidden"),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputeStatus(tc.err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ComputeStatus() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChanged(t *testing.T) {
	base := &minecraftv1alpha1.Minecraft{
		ObjectMeta: metav1.ObjectMeta{Name: "survival", Namespace: "default"},
		Status:     Active(),
	}

	tests := map[string]struct {
		mutate func(*minecraftv1alpha1.Minecraft)
		want   bool
	}{
		"identical": {
			mutate: func(*minecraftv1alpha1.Minecraft) {},
			want:   false,
		},
		"phase flip": {
			mutate: func(m *minecraftv1alpha1.Minecraft) { m.Status = Failed(errors.New("boom")) },
			want:   true,
		},
		"message change only": {
			mutate: func(m *minecraftv1alpha1.Minecraft) { m.Status.Message = ptr.To("other") },
			want:   true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			current := base.DeepCopy()
			tc.mutate(current)
			if got := Changed(base, current); got != tc.want {
				t.Errorf("Changed() = %v, want %v", got, tc.want)
			}
		})
	}
}
