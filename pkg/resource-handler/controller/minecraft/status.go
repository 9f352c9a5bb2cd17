package minecraft

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/monitoring"
	"github.com/ctron/minecraft-operator/pkg/util/status"
)

// reportStatus writes the status of computed when computed differs from
// original in any way. An unchanged object causes no write.
func (r *MinecraftReconciler) reportStatus(
	ctx context.Context,
	original, computed *minecraftv1alpha1.Minecraft,
) error {
	ctx, span := monitoring.StartChildSpan(ctx, "Minecraft.ReportStatus")
	defer span.End()

	if !status.Changed(original, computed) {
		monitoring.SetMinecraftInfo(computed.Name, computed.Namespace, string(computed.Status.Phase))
		return nil
	}

	if err := r.Status().Update(ctx, computed); err != nil {
		monitoring.RecordSpanError(span, err)
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.FromContext(ctx).Info("Updated status", "phase", computed.Status.Phase)
	monitoring.SetMinecraftInfo(computed.Name, computed.Namespace, string(computed.Status.Phase))
	if computed.Status.Phase == minecraftv1alpha1.PhaseActive &&
		original.Status.Phase != minecraftv1alpha1.PhaseActive {
		r.Recorder.Event(computed, "Normal", "Synced", "Successfully reconciled Minecraft")
	}

	return nil
}
