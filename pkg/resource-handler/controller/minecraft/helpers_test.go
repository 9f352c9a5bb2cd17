package minecraft

import (
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/utils/ptr"

	routev1 "github.com/ctron/minecraft-operator/api/route/v1"
	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
)

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	for _, add := range []func(*runtime.Scheme) error{
		clientgoscheme.AddToScheme,
		minecraftv1alpha1.AddToScheme,
		routev1.AddToScheme,
	} {
		if err := add(scheme); err != nil {
			t.Fatalf("AddToScheme: %v", err)
		}
	}
	return scheme
}

func newMinecraft(name string) *minecraftv1alpha1.Minecraft {
	return &minecraftv1alpha1.Minecraft{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "default",
			UID:       "mc-uid",
		},
	}
}

func ownerRefs(name string) []metav1.OwnerReference {
	return []metav1.OwnerReference{{
		APIVersion:         "minecraft.dentrassi.de/v1alpha1",
		Kind:               "Minecraft",
		Name:               name,
		UID:                "mc-uid",
		Controller:         ptr.To(true),
		BlockOwnerDeletion: ptr.To(true),
	}}
}

func selectorLabels(name string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":      "server",
		"app.kubernetes.io/instance":  "server-" + name,
		"app.kubernetes.io/component": "server",
	}
}

func standardLabels(name string) map[string]string {
	labels := selectorLabels(name)
	labels["app.kubernetes.io/managed-by"] = "minecraft-operator"
	return labels
}
