// Package monitoring provides Prometheus metrics, recording helpers and
// OpenTelemetry tracing for the Minecraft Operator. The metrics complement
// the generic controller-runtime metrics already registered by the framework.
//
// All metrics follow the naming convention minecraft_operator_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus registry
// on import.
//
// Usage in controllers:
//
//	monitoring.SetMinecraftInfo(mc.Name, mc.Namespace, string(mc.Status.Phase))
//	monitoring.RecordChildApply("Deployment", string(op))
//	monitoring.RecordReconcile(err, time.Since(start))
package monitoring
