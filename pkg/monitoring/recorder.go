package monitoring

import "time"

const (
	resultSuccess = "success"
	resultError   = "error"
)

// SetMinecraftInfo sets the info-style gauge for a Minecraft resource.
// Old phase labels are cleaned up via DeletePartialMatch.
func SetMinecraftInfo(name, namespace, phase string) {
	minecraftInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	minecraftInfo.WithLabelValues(name, namespace, phase).Set(1)
}

// DeleteMinecraftInfo drops every label set for a Minecraft resource that is gone.
func DeleteMinecraftInfo(name, namespace string) {
	minecraftInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
}

// RecordReconcile records the result and duration of one reconciliation pass.
func RecordReconcile(err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	reconcileTotal.WithLabelValues(result).Inc()
	reconcileDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordChildApply counts one child synchronization. operation is the
// controllerutil.OperationResult ("created", "updated", "unchanged") or "error".
func RecordChildApply(kind, operation string) {
	childApplyTotal.WithLabelValues(kind, operation).Inc()
}
