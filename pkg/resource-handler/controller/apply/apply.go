package apply

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/ctron/minecraft-operator/pkg/monitoring"
)

// OperationError is recorded in the child apply metric when synchronization fails.
const OperationError = "error"

// MutateFn sets the operator-owned fields of obj. It receives either the live
// object or, when the object does not exist, obj with only its key set.
type MutateFn[T client.Object] func(obj T) error

// CreateOrUpdate synchronizes obj, identified by its namespace and name, with
// the API server. The live object is fetched into obj and mutated in place. An
// Update is only issued when the mutated object is not semantically equal to
// the fetched one.
//
// Errors from the API server and from mutate are returned unchanged.
func CreateOrUpdate[T client.Object](
	ctx context.Context,
	c client.Client,
	obj T,
	mutate MutateFn[T],
) (controllerutil.OperationResult, error) {
	kind := kindOf(c, obj)

	ctx, span := monitoring.StartChildSpan(ctx, "Apply."+kind,
		attribute.String("k8s.resource.kind", kind),
		attribute.String("k8s.resource.name", obj.GetName()),
	)
	defer span.End()

	logger := log.FromContext(ctx).WithValues("kind", kind, "child", obj.GetName())

	op, err := controllerutil.CreateOrUpdate(ctx, c, obj, func() error {
		return mutate(obj)
	})
	if err != nil {
		monitoring.RecordSpanError(span, err)
		monitoring.RecordChildApply(kind, OperationError)
		return op, err
	}

	span.SetAttributes(attribute.String("apply.operation", string(op)))
	monitoring.RecordChildApply(kind, string(op))
	logger.V(1).Info("Applied child resource", "operation", op)

	return op, nil
}

func kindOf(c client.Client, obj client.Object) string {
	gvk, err := apiutil.GVKForObject(obj, c.Scheme())
	if err != nil {
		return "Unknown"
	}
	return gvk.Kind
}
