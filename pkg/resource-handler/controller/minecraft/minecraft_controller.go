package minecraft

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	routev1 "github.com/ctron/minecraft-operator/api/route/v1"
	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/monitoring"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/apply"
	"github.com/ctron/minecraft-operator/pkg/util/status"
)

// MinecraftReconciler reconciles a Minecraft object.
type MinecraftReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder

	// RoutesEnabled controls whether a Route is managed. When false no Route
	// is read or written and Routes are not watched.
	RoutesEnabled bool

	// FailureRequeueAfter schedules another pass after a failed one. Zero
	// leaves retries to the next watch event.
	FailureRequeueAfter time.Duration
}

// +kubebuilder:rbac:groups=minecraft.dentrassi.de,resources=minecrafts,verbs=get;list;watch
// +kubebuilder:rbac:groups=minecraft.dentrassi.de,resources=minecrafts/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=minecraft.dentrassi.de,resources=minecrafts/finalizers,verbs=update
// +kubebuilder:rbac:groups="",resources=serviceaccounts,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=persistentvolumeclaims,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups=route.openshift.io,resources=routes,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

// Reconcile handles Minecraft resource reconciliation.
//
// A failure to apply a child is recorded in the status and is not returned
// as an error. Only a failed read of the parent or a failed status write is
// returned, so that controller-runtime backs off.
func (r *MinecraftReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	start := time.Now()
	ctx, span := monitoring.StartReconcileSpan(ctx, "Minecraft.Reconcile", req.Name, req.Namespace, "Minecraft")
	defer span.End()
	ctx = monitoring.EnrichLoggerWithTrace(ctx)
	logger := log.FromContext(ctx)

	// Fetch the Minecraft instance
	mc := &minecraftv1alpha1.Minecraft{}
	if err := r.Get(ctx, req.NamespacedName, mc); err != nil {
		if errors.IsNotFound(err) {
			logger.Info("Minecraft resource not found, ignoring")
			monitoring.DeleteMinecraftInfo(req.Name, req.Namespace)
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get Minecraft")
		monitoring.RecordSpanError(span, err)
		monitoring.RecordReconcile(err, time.Since(start))
		return ctrl.Result{}, err
	}

	// If being deleted, let Kubernetes GC handle cleanup
	if !mc.DeletionTimestamp.IsZero() {
		logger.V(1).Info("Minecraft is being deleted, skipping")
		return ctrl.Result{}, nil
	}

	applyErr, err := r.reconcile(ctx, mc)
	if err != nil {
		logger.Error(err, "Failed to update status")
		monitoring.RecordSpanError(span, err)
		monitoring.RecordReconcile(err, time.Since(start))
		return ctrl.Result{}, err
	}

	monitoring.RecordReconcile(applyErr, time.Since(start))
	if applyErr != nil {
		monitoring.RecordSpanError(span, applyErr)
		logger.Error(applyErr, "Failed to reconcile Minecraft", "requeueAfter", r.FailureRequeueAfter)
		return ctrl.Result{RequeueAfter: r.FailureRequeueAfter}, nil
	}

	return ctrl.Result{}, nil
}

// reconcile runs one pass over the children of original and reports the
// outcome in its status. It returns the error that stopped the pass, if any,
// and separately the error of the status write.
func (r *MinecraftReconciler) reconcile(
	ctx context.Context,
	original *minecraftv1alpha1.Minecraft,
) (applyErr, statusErr error) {
	current := original.DeepCopy()

	applyErr = r.reconcileChildren(ctx, current)
	if applyErr != nil {
		// Nothing computed on the failed path is kept.
		current = original.DeepCopy()
	}
	current.Status = status.ComputeStatus(applyErr)

	return applyErr, r.reportStatus(ctx, original, current)
}

// reconcileChildren applies every child of mc in dependency order and stops
// at the first failure.
func (r *MinecraftReconciler) reconcileChildren(ctx context.Context, mc *minecraftv1alpha1.Minecraft) error {
	names, err := namesFor(mc)
	if err != nil {
		return err
	}

	if err := applyChild(ctx, r, mc, "ServiceAccount",
		&corev1.ServiceAccount{ObjectMeta: childMeta(mc, names.ServiceAccount)},
		MutateServiceAccount); err != nil {
		return err
	}
	if err := applyChild(ctx, r, mc, "PersistentVolumeClaim",
		&corev1.PersistentVolumeClaim{ObjectMeta: childMeta(mc, names.Claim)},
		MutateDataClaim); err != nil {
		return err
	}
	if err := applyChild(ctx, r, mc, "Deployment",
		&appsv1.Deployment{ObjectMeta: childMeta(mc, names.Deployment)},
		MutateDeployment); err != nil {
		return err
	}
	if err := applyChild(ctx, r, mc, "Service",
		&corev1.Service{ObjectMeta: childMeta(mc, names.Service)},
		MutateService); err != nil {
		return err
	}
	if !r.RoutesEnabled {
		return nil
	}
	return applyChild(ctx, r, mc, "Route",
		&routev1.Route{ObjectMeta: childMeta(mc, names.Route)},
		MutateRoute)
}

// applyChild synchronizes a single child and emits an event when it was
// created or changed.
func applyChild[T client.Object](
	ctx context.Context,
	r *MinecraftReconciler,
	mc *minecraftv1alpha1.Minecraft,
	kind string,
	obj T,
	mutate func(T, *minecraftv1alpha1.Minecraft, *runtime.Scheme) error,
) error {
	op, err := apply.CreateOrUpdate(ctx, r.Client, obj, func(o T) error {
		return mutate(o, mc, r.Scheme)
	})
	if err != nil {
		r.Recorder.Eventf(mc, "Warning", "FailedApply", "Failed to apply %s %s: %v", kind, obj.GetName(), err)
		return fmt.Errorf("failed to apply %s %s: %w", kind, obj.GetName(), err)
	}

	if op != controllerutil.OperationResultNone {
		r.Recorder.Eventf(mc, "Normal", "Applied", "%s %s %s", kind, obj.GetName(), op)
	}
	return nil
}

func childMeta(mc *minecraftv1alpha1.Minecraft, name string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Name: name, Namespace: mc.Namespace}
}

// SetupWithManager sets up the controller with the Manager.
//
// The work queue never hands the same Minecraft to two workers at once, so
// MaxConcurrentReconciles in opts only parallelizes distinct resources.
func (r *MinecraftReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	b := ctrl.NewControllerManagedBy(mgr).
		For(&minecraftv1alpha1.Minecraft{}).
		Owns(&corev1.ServiceAccount{}).
		Owns(&corev1.PersistentVolumeClaim{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		WithOptions(controllerOpts)
	if r.RoutesEnabled {
		b = b.Owns(&routev1.Route{})
	}
	return b.Complete(r)
}
