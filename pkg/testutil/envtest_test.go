//go:build integration
// +build integration

package testutil_test

import (
	"context"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"

	"github.com/ctron/minecraft-operator/pkg/testutil"
)

func TestSetUpEnvtestManager(t *testing.T) {
	t.Parallel()

	scheme := runtime.NewScheme()
	_ = corev1.AddToScheme(scheme)

	mgr := testutil.SetUpEnvtestManager(t, scheme)
	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		t.Fatalf("Failed to set up health check, %v", err)
	}
	testutil.StartManager(t, mgr)

	direct := testutil.SetUpClient(t, mgr.GetConfig(), scheme)
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "probe", Namespace: "default"},
		Data:       map[string]string{"k": "v"},
	}
	if err := direct.Create(t.Context(), cm); err != nil {
		t.Fatalf("Failed to create ConfigMap: %v", err)
	}

	testutil.Eventually(t, 10*time.Second, func(ctx context.Context) (bool, error) {
		got := &corev1.ConfigMap{}
		if err := mgr.GetClient().Get(ctx, client.ObjectKeyFromObject(cm), got); err != nil {
			return false, err
		}
		return got.Data["k"] == "v", nil
	})
}
