// Package minecraft implements the controller that turns a Minecraft custom
// resource into a running game server.
//
// Each reconciliation applies, in order, a ServiceAccount, a
// PersistentVolumeClaim for world data, a single-replica Deployment with a
// TLS sidecar, a ClusterIP Service and, on OpenShift, a passthrough Route.
// Every child is owned by the Minecraft resource so that deleting the parent
// lets the garbage collector remove the whole topology.
//
// The first failing child stops the pass. The error text is recorded in
// status.message and the phase is set to Failed. Children applied before the
// failure are left in place; the next pass converges them.
package minecraft
