package minecraft

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// The helpers below look up a named entry in a list and append an empty one
// when it is missing. Callers then set only the fields they own, so entries
// and fields added by the API server or other actors survive an update.

func findOrAppendContainer(containers *[]corev1.Container, name string) *corev1.Container {
	for i := range *containers {
		if (*containers)[i].Name == name {
			return &(*containers)[i]
		}
	}
	*containers = append(*containers, corev1.Container{Name: name})
	return &(*containers)[len(*containers)-1]
}

func findOrAppendContainerPort(ports *[]corev1.ContainerPort, name string) *corev1.ContainerPort {
	for i := range *ports {
		if (*ports)[i].Name == name {
			return &(*ports)[i]
		}
	}
	*ports = append(*ports, corev1.ContainerPort{Name: name})
	return &(*ports)[len(*ports)-1]
}

func findOrAppendServicePort(ports *[]corev1.ServicePort, name string) *corev1.ServicePort {
	for i := range *ports {
		if (*ports)[i].Name == name {
			return &(*ports)[i]
		}
	}
	*ports = append(*ports, corev1.ServicePort{Name: name})
	return &(*ports)[len(*ports)-1]
}

func findOrAppendVolumeMount(mounts *[]corev1.VolumeMount, name string) *corev1.VolumeMount {
	for i := range *mounts {
		if (*mounts)[i].Name == name {
			return &(*mounts)[i]
		}
	}
	*mounts = append(*mounts, corev1.VolumeMount{Name: name})
	return &(*mounts)[len(*mounts)-1]
}

func findOrAppendVolume(volumes *[]corev1.Volume, name string) *corev1.Volume {
	for i := range *volumes {
		if (*volumes)[i].Name == name {
			return &(*volumes)[i]
		}
	}
	*volumes = append(*volumes, corev1.Volume{Name: name})
	return &(*volumes)[len(*volumes)-1]
}

// setMount mounts the named volume at path.
func setMount(c *corev1.Container, volume, path string, readOnly bool) {
	m := findOrAppendVolumeMount(&c.VolumeMounts, volume)
	m.MountPath = path
	m.ReadOnly = readOnly
}

// setMemory sets the memory request and limit of c to the same quantity and
// leaves other resources alone.
func setMemory(c *corev1.Container, quantity string) error {
	q, err := resource.ParseQuantity(quantity)
	if err != nil {
		return err
	}
	if c.Resources.Requests == nil {
		c.Resources.Requests = corev1.ResourceList{}
	}
	if c.Resources.Limits == nil {
		c.Resources.Limits = corev1.ResourceList{}
	}
	c.Resources.Requests[corev1.ResourceMemory] = q
	c.Resources.Limits[corev1.ResourceMemory] = q
	return nil
}
