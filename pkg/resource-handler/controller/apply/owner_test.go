package apply

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
)

func TestSetOwner(t *testing.T) {
	scheme := runtime.NewScheme()
	_ = minecraftv1alpha1.AddToScheme(scheme)

	owner := &minecraftv1alpha1.Minecraft{
		ObjectMeta: metav1.ObjectMeta{Name: "survival", Namespace: "default", UID: "uid-1"},
	}
	wantRef := metav1.OwnerReference{
		APIVersion:         "minecraft.dentrassi.de/v1alpha1",
		Kind:               "Minecraft",
		Name:               "survival",
		UID:                "uid-1",
		Controller:         ptr.To(true),
		BlockOwnerDeletion: ptr.To(true),
	}

	tests := map[string]struct {
		child   *corev1.ServiceAccount
		owner   *minecraftv1alpha1.Minecraft
		scheme  *runtime.Scheme
		want    []metav1.OwnerReference
		wantErr error
	}{
		"fresh child": {
			child:  &corev1.ServiceAccount{},
			owner:  owner,
			scheme: scheme,
			want:   []metav1.OwnerReference{wantRef},
		},
		"replaces foreign owners": {
			child: &corev1.ServiceAccount{ObjectMeta: metav1.ObjectMeta{
				OwnerReferences: []metav1.OwnerReference{
					{APIVersion: "v1", Kind: "ConfigMap", Name: "other", UID: "uid-2"},
					wantRef,
				},
			}},
			owner:  owner,
			scheme: scheme,
			want:   []metav1.OwnerReference{wantRef},
		},
		"owner without UID": {
			child: &corev1.ServiceAccount{},
			owner: &minecraftv1alpha1.Minecraft{
				ObjectMeta: metav1.ObjectMeta{Name: "survival", Namespace: "default"},
			},
			scheme:  scheme,
			wantErr: ErrOwnerNotPersisted,
		},
		"owner kind not registered": {
			child:  &corev1.ServiceAccount{},
			owner:  owner,
			scheme: runtime.NewScheme(),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := SetOwner(tc.child, tc.owner, tc.scheme)

			if tc.want == nil {
				if err == nil {
					t.Fatal("SetOwner() expected error, got nil")
				}
				if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
					t.Errorf("SetOwner() error = %v, want %v", err, tc.wantErr)
				}
				if len(tc.child.OwnerReferences) != 0 {
					t.Errorf("owner references must stay untouched on error, got %v", tc.child.OwnerReferences)
				}
				return
			}

			if err != nil {
				t.Fatalf("SetOwner() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, tc.child.OwnerReferences); diff != "" {
				t.Errorf("owner references mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
