package minecraft

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	routev1 "github.com/ctron/minecraft-operator/api/route/v1"
	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/apply"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/metadata"
)

// MutateRoute shapes route into a passthrough Route to the TLS port of the
// Service. The host stays whatever the router assigned.
func MutateRoute(route *routev1.Route, mc *minecraftv1alpha1.Minecraft, scheme *runtime.Scheme) error {
	names, err := namesFor(mc)
	if err != nil {
		return err
	}
	if err := apply.SetOwner(route, mc, scheme); err != nil {
		return err
	}

	route.Labels = metadata.MergeLabels(metadata.BuildStandardLabels(ComponentName, mc.Name), route.Labels)

	if route.Spec.TLS == nil {
		route.Spec.TLS = &routev1.TLSConfig{}
	}
	route.Spec.TLS.Termination = routev1.TLSTerminationPassthrough
	route.Spec.TLS.InsecureEdgeTerminationPolicy = routev1.InsecureEdgeTerminationPolicyNone

	if route.Spec.Port == nil {
		route.Spec.Port = &routev1.RoutePort{}
	}
	route.Spec.Port.TargetPort = intstr.FromString(TLSPortName)

	route.Spec.To.Kind = "Service"
	route.Spec.To.Name = names.Service
	route.Spec.To.Weight = ptr.To(int32(100))

	return nil
}
