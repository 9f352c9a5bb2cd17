package minecraft

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// Both containers share the same probe policy, only the port differs.
const (
	probeInitialDelaySeconds int32 = 30
	probePeriodSeconds       int32 = 10

	readinessTimeoutSeconds   int32 = 1
	readinessFailureThreshold int32 = 3

	livenessTimeoutSeconds   int32 = 3
	livenessFailureThreshold int32 = 5
)

func tcpProbe(port int32, timeout, failureThreshold int32) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			TCPSocket: &corev1.TCPSocketAction{
				Port: intstr.FromInt32(port),
			},
		},
		InitialDelaySeconds: probeInitialDelaySeconds,
		PeriodSeconds:       probePeriodSeconds,
		TimeoutSeconds:      timeout,
		SuccessThreshold:    1,
		FailureThreshold:    failureThreshold,
	}
}

// setProbes replaces the readiness and liveness probes of c with TCP checks
// against port.
func setProbes(c *corev1.Container, port int32) {
	c.ReadinessProbe = tcpProbe(port, readinessTimeoutSeconds, readinessFailureThreshold)
	c.LivenessProbe = tcpProbe(port, livenessTimeoutSeconds, livenessFailureThreshold)
}
