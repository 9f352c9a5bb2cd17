package minecraft

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/apply"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/metadata"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/storage"
)

// DataVolumeSize is the requested size of the world data volume.
const DataVolumeSize = "1Gi"

// MutateDataClaim shapes pvc into the world data claim of mc.
func MutateDataClaim(pvc *corev1.PersistentVolumeClaim, mc *minecraftv1alpha1.Minecraft, scheme *runtime.Scheme) error {
	if err := apply.SetOwner(pvc, mc, scheme); err != nil {
		return err
	}
	pvc.Labels = metadata.MergeLabels(metadata.BuildStandardLabels(ComponentName, mc.Name), pvc.Labels)
	return storage.ApplyClaimSpec(pvc, corev1.ReadWriteOnce, DataVolumeSize)
}
