/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"crypto/tls"
	"flag"
	"os"
	"time"

	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"go.uber.org/zap/zapcore"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/client-go/discovery"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/metrics/filters"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	routev1 "github.com/ctron/minecraft-operator/api/route/v1"
	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/monitoring"
	"github.com/ctron/minecraft-operator/pkg/platform"
	minecraftcontroller "github.com/ctron/minecraft-operator/pkg/resource-handler/controller/minecraft"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")

	// version is set at build time.
	version = "dev"
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(minecraftv1alpha1.AddToScheme(scheme))
	utilruntime.Must(routev1.AddToScheme(scheme))
	// +kubebuilder:scaffold:scheme
}

func main() {
	var metricsAddr string
	var enableLeaderElection bool
	var probeAddr string
	var secureMetrics bool
	var enableHTTP2 bool
	var tlsOpts []func(*tls.Config)

	// Reconciliation Flags
	var watchNamespace string
	var routeMode string
	var failureRequeueAfter time.Duration
	var maxConcurrentReconciles int

	// General Flags
	flag.StringVar(&metricsAddr, "metrics-bind-address", "0", "The address the metrics endpoint binds to.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false, "Enable leader election for controller manager.")
	flag.BoolVar(&secureMetrics, "metrics-secure", true, "If set, the metrics endpoint is served securely via HTTPS.")
	flag.BoolVar(&enableHTTP2, "enable-http2", false, "If set, HTTP/2 will be enabled for the metrics server")

	flag.StringVar(&watchNamespace, "watch-namespace", os.Getenv("WATCH_NAMESPACE"), "Only watch this namespace. Empty watches all namespaces.")
	flag.StringVar(&routeMode, "routes", string(platform.RouteModeAuto), "Manage OpenShift Routes: auto, enabled or disabled.")
	flag.DurationVar(&failureRequeueAfter, "failure-requeue-after", time.Minute, "Delay before retrying a failed reconciliation. 0 waits for the next change.")
	flag.IntVar(&maxConcurrentReconciles, "max-concurrent-reconciles", 1, "Number of Minecraft resources reconciled in parallel.")

	opts := zap.Options{
		Development: true,
		TimeEncoder: zapcore.ISO8601TimeEncoder,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	mode, err := platform.ParseRouteMode(routeMode)
	if err != nil {
		setupLog.Error(err, "invalid flag", "flag", "routes")
		os.Exit(1)
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "minecraft-operator", version)
	if err != nil {
		setupLog.Error(err, "unable to initialize tracing")
		os.Exit(1)
	}

	disableHTTP2 := func(c *tls.Config) {
		setupLog.Info("disabling http/2")
		c.NextProtos = []string{"http/1.1"}
	}
	if !enableHTTP2 {
		tlsOpts = append(tlsOpts, disableHTTP2)
	}

	metricsServerOptions := metricsserver.Options{
		BindAddress:   metricsAddr,
		SecureServing: secureMetrics,
		TLSOpts:       tlsOpts,
	}

	if secureMetrics {
		metricsServerOptions.FilterProvider = filters.WithAuthenticationAndAuthorization
	}

	restCfg := ctrl.GetConfigOrDie()

	// 1. Detect platform capabilities
	dc, err := discovery.NewDiscoveryClientForConfig(restCfg)
	if err != nil {
		setupLog.Error(err, "unable to create discovery client")
		os.Exit(1)
	}
	routesEnabled, err := platform.RoutesEnabled(mode, dc)
	if err != nil {
		setupLog.Error(err, "unable to detect route support")
		os.Exit(1)
	}
	setupLog.Info("platform capabilities", "routes", routesEnabled, "mode", mode)

	cacheOpts := cache.Options{}
	if watchNamespace != "" {
		setupLog.Info("restricting to namespace", "namespace", watchNamespace)
		cacheOpts.DefaultNamespaces = map[string]cache.Config{watchNamespace: {}}
	}

	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsServerOptions,
		HealthProbeBindAddress: probeAddr,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       "minecraft-operator.minecraft.dentrassi.de",
		Cache:                  cacheOpts,
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	// 2. Initialize Controllers
	if err = (&minecraftcontroller.MinecraftReconciler{
		Client:              mgr.GetClient(),
		Scheme:              mgr.GetScheme(),
		Recorder:            mgr.GetEventRecorderFor("minecraft-operator"),
		RoutesEnabled:       routesEnabled,
		FailureRequeueAfter: failureRequeueAfter,
	}).SetupWithManager(mgr, controller.Options{
		MaxConcurrentReconciles: maxConcurrentReconciles,
	}); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Minecraft")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager", "version", version)
	runErr := mgr.Start(ctrl.SetupSignalHandler())
	if err := shutdownTracing(context.Background()); err != nil {
		setupLog.Error(err, "failed to shut down tracing")
	}
	if runErr != nil {
		setupLog.Error(runErr, "problem running manager")
		os.Exit(1)
	}
}
