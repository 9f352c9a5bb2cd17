package minecraft

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/apply"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/metadata"
)

// MutateService shapes svc into the ClusterIP Service in front of the TLS
// sidecar. The serving-cert annotation makes OpenShift issue the certificate
// the sidecar mounts.
func MutateService(svc *corev1.Service, mc *minecraftv1alpha1.Minecraft, scheme *runtime.Scheme) error {
	names, err := namesFor(mc)
	if err != nil {
		return err
	}
	if err := apply.SetOwner(svc, mc, scheme); err != nil {
		return err
	}

	svc.Labels = metadata.MergeLabels(metadata.BuildStandardLabels(ComponentName, mc.Name), svc.Labels)
	svc.Annotations = metadata.SetAnnotation(svc.Annotations, metadata.AnnotationServingCertSecretName, names.TLSSecret)

	svc.Spec.Type = corev1.ServiceTypeClusterIP
	svc.Spec.Selector = metadata.BuildSelectorLabels(ComponentName, mc.Name)

	port := findOrAppendServicePort(&svc.Spec.Ports, TLSPortName)
	port.Port = TLSPort
	port.Protocol = corev1.ProtocolTCP
	port.TargetPort = intstr.FromString(TLSPortName)

	return nil
}
