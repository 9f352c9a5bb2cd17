package metadata

import "maps"

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// ManagedByMinecraft identifies the operator managing these resources.
	ManagedByMinecraft = "minecraft-operator"
)

const (
	// AnnotationServingCertSecretName asks the OpenShift service CA operator to
	// issue a serving certificate for a Service into the named Secret.
	AnnotationServingCertSecretName = "service.beta.openshift.io/serving-cert-secret-name"
)

// BuildSelectorLabels builds the label set that ties pods to their
// Deployment and Service. The same map is used as pod template labels,
// Deployment selector and Service selector, so the three can never drift.
//
// Parameters:
//   - componentName: The component type (e.g., "server")
//   - instanceName: The name of the custom resource instance (e.g., "survival")
//
// Example usage:
//
//	labels := BuildSelectorLabels("server", "survival")
//	// Returns: {
//	//   "app.kubernetes.io/name":      "server",
//	//   "app.kubernetes.io/instance":  "server-survival",
//	//   "app.kubernetes.io/component": "server",
//	// }
func BuildSelectorLabels(componentName, instanceName string) map[string]string {
	return map[string]string{
		LabelAppName:      componentName,
		LabelAppInstance:  componentName + "-" + instanceName,
		LabelAppComponent: componentName,
	}
}

// BuildStandardLabels returns the selector labels plus the managed-by label.
// These are stamped on the metadata of every child object.
func BuildStandardLabels(componentName, instanceName string) map[string]string {
	labels := BuildSelectorLabels(componentName, instanceName)
	labels[LabelAppManagedBy] = ManagedByMinecraft
	return labels
}

// MergeLabels merges custom labels with standard labels.
//
// Note that standard labels take precedence over custom labels to prevent users
// from overriding critical operator-managed labels.
func MergeLabels(standardLabels, customLabels map[string]string) map[string]string {
	merged := make(map[string]string)

	// Copy custom labels first (if provided)
	maps.Copy(merged, customLabels)

	// Copy standard labels (overwriting any duplicates from custom)
	maps.Copy(merged, standardLabels)

	return merged
}

// SetAnnotation sets a single annotation on the given map, allocating it when
// nil, and returns the map.
func SetAnnotation(annotations map[string]string, key, value string) map[string]string {
	if annotations == nil {
		annotations = make(map[string]string)
	}
	annotations[key] = value
	return annotations
}
