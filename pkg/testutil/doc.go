// Package testutil provides test utilities for the operator controllers.
//
// Unit tests build a fake client that injects failures and records every
// call it receives:
//
//	calls := &testutil.CallLog{}
//	c := testutil.NewFakeClient(scheme, &testutil.FailureConfig{
//	    OnCreate: testutil.FailOnObjectName("survival-server", testutil.ErrInjected),
//	}, calls, existing...)
//
//	// ... run the reconciler ...
//	if got := calls.Count(testutil.VerbUpdate); got != 0 {
//	    t.Errorf("expected no updates, got %d", got)
//	}
//
// Integration tests run against envtest. SetUpEnvtestManager starts an API
// server with the CRDs installed and a started manager, and Eventually polls
// until the cluster reaches the expected state.
package testutil
