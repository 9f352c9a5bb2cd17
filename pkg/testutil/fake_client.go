package testutil

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
)

// Verbs recorded in a CallLog.
const (
	VerbGet          = "get"
	VerbList         = "list"
	VerbCreate       = "create"
	VerbUpdate       = "update"
	VerbPatch        = "patch"
	VerbDelete       = "delete"
	VerbStatusUpdate = "status-update"
	VerbStatusPatch  = "status-patch"
)

// FailureConfig configures when the fake client should return errors.
// Each field receives the object or key and returns an error if the operation should fail.
type FailureConfig struct {
	// OnGet is called before Get operations. Return non-nil to fail the operation.
	OnGet func(key client.ObjectKey) error

	// OnList is called before List operations. Return non-nil to fail the operation.
	OnList func(list client.ObjectList) error

	// OnCreate is called before Create operations. Return non-nil to fail the operation.
	OnCreate func(obj client.Object) error

	// OnUpdate is called before Update operations. Return non-nil to fail the operation.
	OnUpdate func(obj client.Object) error

	// OnPatch is called before Patch operations. Return non-nil to fail the operation.
	OnPatch func(obj client.Object) error

	// OnDelete is called before Delete operations. Return non-nil to fail the operation.
	OnDelete func(obj client.Object) error

	// OnStatusUpdate is called before Status().Update() operations. Return non-nil to fail the operation.
	OnStatusUpdate func(obj client.Object) error

	// OnStatusPatch is called before Status().Patch() operations. Return non-nil to fail the operation.
	OnStatusPatch func(obj client.Object) error
}

// Call is one request received by the fake client.
type Call struct {
	Verb string
	Kind string
	Name string
}

func (c Call) String() string {
	return fmt.Sprintf("%s %s/%s", c.Verb, c.Kind, c.Name)
}

// CallLog records the calls made against a fake client. It is safe for
// concurrent use.
type CallLog struct {
	mu    sync.Mutex
	calls []Call
}

func (l *CallLog) record(verb, kind, name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, Call{Verb: verb, Kind: kind, Name: name})
}

// Calls returns a copy of every recorded call in order.
func (l *CallLog) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

// Count returns the number of recorded calls with the given verb.
func (l *CallLog) Count(verb string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		if c.Verb == verb {
			n++
		}
	}
	return n
}

// Writes returns the recorded mutating calls, status writes included.
func (l *CallLog) Writes() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Call
	for _, c := range l.calls {
		if c.Verb != VerbGet && c.Verb != VerbList {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (l *CallLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

// NewFakeClient builds a fake client seeded with objs. Calls are checked
// against config before reaching the fake and recorded in calls. Both config
// and calls may be nil. Objects of a type with a status subresource must be
// listed in statusObjs so that Update and Status().Update behave like a real
// API server.
func NewFakeClient(
	scheme *runtime.Scheme,
	config *FailureConfig,
	calls *CallLog,
	statusObjs []client.Object,
	objs ...client.Object,
) client.WithWatch {
	if config == nil {
		config = &FailureConfig{}
	}
	kindOf := func(obj runtime.Object) string {
		gvk, err := apiutil.GVKForObject(obj, scheme)
		if err != nil {
			return fmt.Sprintf("%T", obj)
		}
		return gvk.Kind
	}

	return fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(statusObjs...).
		WithInterceptorFuncs(interceptor.Funcs{
			Get: func(ctx context.Context, c client.WithWatch, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
				calls.record(VerbGet, kindOf(obj), key.Name)
				if config.OnGet != nil {
					if err := config.OnGet(key); err != nil {
						return err
					}
				}
				return c.Get(ctx, key, obj, opts...)
			},
			List: func(ctx context.Context, c client.WithWatch, list client.ObjectList, opts ...client.ListOption) error {
				calls.record(VerbList, kindOf(list), "")
				if config.OnList != nil {
					if err := config.OnList(list); err != nil {
						return err
					}
				}
				return c.List(ctx, list, opts...)
			},
			Create: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.CreateOption) error {
				calls.record(VerbCreate, kindOf(obj), obj.GetName())
				if config.OnCreate != nil {
					if err := config.OnCreate(obj); err != nil {
						return err
					}
				}
				return c.Create(ctx, obj, opts...)
			},
			Update: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.UpdateOption) error {
				calls.record(VerbUpdate, kindOf(obj), obj.GetName())
				if config.OnUpdate != nil {
					if err := config.OnUpdate(obj); err != nil {
						return err
					}
				}
				return c.Update(ctx, obj, opts...)
			},
			Patch: func(ctx context.Context, c client.WithWatch, obj client.Object, patch client.Patch, opts ...client.PatchOption) error {
				calls.record(VerbPatch, kindOf(obj), obj.GetName())
				if config.OnPatch != nil {
					if err := config.OnPatch(obj); err != nil {
						return err
					}
				}
				return c.Patch(ctx, obj, patch, opts...)
			},
			Delete: func(ctx context.Context, c client.WithWatch, obj client.Object, opts ...client.DeleteOption) error {
				calls.record(VerbDelete, kindOf(obj), obj.GetName())
				if config.OnDelete != nil {
					if err := config.OnDelete(obj); err != nil {
						return err
					}
				}
				return c.Delete(ctx, obj, opts...)
			},
			SubResourceUpdate: func(ctx context.Context, c client.Client, subResource string, obj client.Object, opts ...client.SubResourceUpdateOption) error {
				calls.record(VerbStatusUpdate, kindOf(obj), obj.GetName())
				if config.OnStatusUpdate != nil {
					if err := config.OnStatusUpdate(obj); err != nil {
						return err
					}
				}
				return c.SubResource(subResource).Update(ctx, obj, opts...)
			},
			SubResourcePatch: func(ctx context.Context, c client.Client, subResource string, obj client.Object, patch client.Patch, opts ...client.SubResourcePatchOption) error {
				calls.record(VerbStatusPatch, kindOf(obj), obj.GetName())
				if config.OnStatusPatch != nil {
					if err := config.OnStatusPatch(obj); err != nil {
						return err
					}
				}
				return c.SubResource(subResource).Patch(ctx, obj, patch, opts...)
			},
		}).
		Build()
}

// Helper functions for common failure scenarios

// FailOnObjectName returns an error if the object name matches.
func FailOnObjectName(name string, err error) func(client.Object) error {
	return func(obj client.Object) error {
		if obj.GetName() == name {
			return err
		}
		return nil
	}
}

// FailOnKeyName returns an error if the key name matches.
func FailOnKeyName(name string, err error) func(client.ObjectKey) error {
	return func(key client.ObjectKey) error {
		if key.Name == name {
			return err
		}
		return nil
	}
}

// FailObjAfterNCalls returns an Object failure function that fails after N successful calls.
func FailObjAfterNCalls(n int, err error) func(client.Object) error {
	var mu sync.Mutex
	count := 0
	return func(client.Object) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		if count > n {
			return err
		}
		return nil
	}
}

// Common errors for testing
var (
	ErrInjected        = errors.New("injected test error")
	ErrNetworkTimeout  = errors.New("network timeout")
	ErrPermissionError = errors.New("permission denied")
)
