// Package platform detects optional APIs of the cluster the operator runs on.
package platform

import (
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/discovery"

	routev1 "github.com/ctron/minecraft-operator/api/route/v1"
)

// RouteMode selects whether Routes are managed.
type RouteMode string

const (
	// RouteModeAuto manages Routes when the cluster serves them.
	RouteModeAuto RouteMode = "auto"
	// RouteModeEnabled always manages Routes.
	RouteModeEnabled RouteMode = "enabled"
	// RouteModeDisabled never manages Routes.
	RouteModeDisabled RouteMode = "disabled"
)

// ParseRouteMode validates a --routes flag value.
func ParseRouteMode(s string) (RouteMode, error) {
	switch m := RouteMode(s); m {
	case RouteModeAuto, RouteModeEnabled, RouteModeDisabled:
		return m, nil
	default:
		return "", fmt.Errorf("invalid route mode %q: must be one of auto, enabled, disabled", s)
	}
}

// HasRoutes reports whether the API server serves route.openshift.io/v1 routes.
func HasRoutes(dc discovery.DiscoveryInterface) (bool, error) {
	list, err := dc.ServerResourcesForGroupVersion(routev1.GroupVersion.String())
	if err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to discover %s: %w", routev1.GroupVersion, err)
	}
	for _, r := range list.APIResources {
		if r.Name == "routes" {
			return true, nil
		}
	}
	return false, nil
}

// RoutesEnabled resolves mode to a decision. Discovery is only consulted in
// auto mode.
func RoutesEnabled(mode RouteMode, dc discovery.DiscoveryInterface) (bool, error) {
	switch mode {
	case RouteModeEnabled:
		return true, nil
	case RouteModeDisabled:
		return false, nil
	default:
		return HasRoutes(dc)
	}
}
