package testutil

import (
	"context"
	"testing"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/envtest"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
)

// EnvtestOption is a functional option for configuring envtest setup.
type EnvtestOption func(*envtestConfig)

type envtestConfig struct {
	crdPaths []string
}

// WithCRDPaths sets the CRD directory paths for envtest.
func WithCRDPaths(paths ...string) EnvtestOption {
	return func(cfg *envtestConfig) {
		cfg.crdPaths = paths
	}
}

// SetUpEnvtest starts a Kubernetes API server for testing and stops it when
// the test finishes.
//
// This requires the envtest binaries to be available, see KUBEBUILDER_ASSETS.
func SetUpEnvtest(t testing.TB, opts ...EnvtestOption) *rest.Config {
	t.Helper()

	cfg := &envtestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	testEnv := &envtest.Environment{
		CRDDirectoryPaths:     cfg.crdPaths,
		ErrorIfCRDPathMissing: len(cfg.crdPaths) > 0,
		// Increase timeout to handle resource contention when many tests run in parallel
		ControlPlaneStartTimeout: 60 * time.Second,
		ControlPlaneStopTimeout:  60 * time.Second,
	}

	restCfg, err := testEnv.Start()
	if err != nil {
		t.Fatalf("Setting up with envtest failed, %v", err)
	}
	t.Cleanup(func() {
		if err := testEnv.Stop(); err != nil {
			t.Errorf("Failed to stop envtest, %v", err)
		}
	})

	return restCfg
}

// SetUpClient creates a direct Kubernetes client that bypasses the manager's
// cache. Use it to read what the API server holds right after a write.
func SetUpClient(t testing.TB, cfg *rest.Config, scheme *runtime.Scheme) client.Client {
	t.Helper()

	k8sClient, err := client.New(cfg, client.Options{Scheme: scheme})
	if err != nil {
		t.Fatalf("Failed to setup a Kubernetes client: %v", err)
	}

	return k8sClient
}

// SetUpManager creates a controller-runtime manager for testing.
//
// The manager is created but NOT started. Register controllers first and then
// call StartManager.
func SetUpManager(t testing.TB, cfg *rest.Config, scheme *runtime.Scheme) manager.Manager {
	t.Helper()

	mgr, err := ctrl.NewManager(cfg, ctrl.Options{
		Scheme:         scheme,
		LeaderElection: false,
		Metrics: metricsserver.Options{
			BindAddress: "0",
		},
	})
	if err != nil {
		t.Fatalf("Failed to set up manager: %v", err)
	}

	return mgr
}

// StartManager starts the manager in the background using t.Context() and
// waits for its cache to sync. The manager stops when the test finishes.
func StartManager(t testing.TB, mgr manager.Manager) {
	t.Helper()

	ctx := t.Context()
	go func() {
		if err := mgr.Start(ctx); err != nil {
			t.Errorf("Manager failed: %v", err)
		}
	}()

	if !mgr.GetCache().WaitForCacheSync(ctx) {
		t.Fatal("Cache failed to sync")
	}
}

// SetUpEnvtestManager combines SetUpEnvtest and SetUpManager. The returned
// manager is not started so that controllers can be registered first.
//
// Note: envtest does not run the garbage collector, so cascading deletion via
// owner references cannot be observed.
func SetUpEnvtestManager(t testing.TB, scheme *runtime.Scheme, opts ...EnvtestOption) manager.Manager {
	t.Helper()

	cfg := SetUpEnvtest(t, opts...)
	return SetUpManager(t, cfg, scheme)
}

// Eventually polls cond until it returns true or timeout elapses. Errors
// returned by cond are treated as "not yet" and the last one is reported on
// timeout.
func Eventually(t testing.TB, timeout time.Duration, cond func(ctx context.Context) (bool, error)) {
	t.Helper()

	var lastErr error
	err := wait.PollUntilContextTimeout(t.Context(), 100*time.Millisecond, timeout, true,
		func(ctx context.Context) (bool, error) {
			done, err := cond(ctx)
			if err != nil {
				lastErr = err
				return false, nil
			}
			return done, nil
		})
	if err != nil {
		t.Fatalf("Condition not met within %s: %v (last error: %v)", timeout, err, lastErr)
	}
}
