// Package storage provides utilities for shaping PersistentVolumeClaims owned
// by the operator.
package storage

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// ApplyClaimSpec sets the access mode and storage request of a claim in place.
//
// Only the fields below are touched, so a claim fetched from the API server
// keeps its defaulted storage class and volume mode:
//   - accessModes: exactly the given mode
//   - resources.requests.storage: storageSize
//   - resources.limits.storage: removed
//
// Parameters:
//   - pvc: The claim to mutate (fresh or fetched)
//   - accessMode: Access mode (e.g., corev1.ReadWriteOnce)
//   - storageSize: Size of the volume (e.g., "1Gi")
func ApplyClaimSpec(
	pvc *corev1.PersistentVolumeClaim,
	accessMode corev1.PersistentVolumeAccessMode,
	storageSize string,
) error {
	size, err := resource.ParseQuantity(storageSize)
	if err != nil {
		return fmt.Errorf("invalid storage size %q: %w", storageSize, err)
	}

	pvc.Spec.AccessModes = []corev1.PersistentVolumeAccessMode{accessMode}

	if pvc.Spec.Resources.Requests == nil {
		pvc.Spec.Resources.Requests = corev1.ResourceList{}
	}
	pvc.Spec.Resources.Requests[corev1.ResourceStorage] = size

	if pvc.Spec.Resources.Limits != nil {
		delete(pvc.Spec.Resources.Limits, corev1.ResourceStorage)
		if len(pvc.Spec.Resources.Limits) == 0 {
			pvc.Spec.Resources.Limits = nil
		}
	}

	return nil
}
