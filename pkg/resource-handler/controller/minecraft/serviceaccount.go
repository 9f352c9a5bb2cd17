package minecraft

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/apply"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/metadata"
)

// MutateServiceAccount stamps ownership and labels on the server's
// ServiceAccount. Secrets and pull secrets added by the platform are kept.
func MutateServiceAccount(sa *corev1.ServiceAccount, mc *minecraftv1alpha1.Minecraft, scheme *runtime.Scheme) error {
	if err := apply.SetOwner(sa, mc, scheme); err != nil {
		return err
	}
	sa.Labels = metadata.MergeLabels(metadata.BuildStandardLabels(ComponentName, mc.Name), sa.Labels)
	return nil
}
