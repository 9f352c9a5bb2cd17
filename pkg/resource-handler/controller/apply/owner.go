package apply

import (
	"errors"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
)

// ErrOwnerNotPersisted is returned when the owner has no UID yet.
var ErrOwnerNotPersisted = errors.New("owner has no UID")

// SetOwner replaces the owner references of child with exactly one controller
// reference to owner. Other owner references are dropped.
func SetOwner(child, owner client.Object, scheme *runtime.Scheme) error {
	if owner.GetUID() == "" {
		return fmt.Errorf("%w: %s/%s", ErrOwnerNotPersisted, owner.GetNamespace(), owner.GetName())
	}

	gvk, err := apiutil.GVKForObject(owner, scheme)
	if err != nil {
		return fmt.Errorf("failed to resolve owner kind: %w", err)
	}

	child.SetOwnerReferences([]metav1.OwnerReference{
		*metav1.NewControllerRef(owner, gvk),
	})
	return nil
}
