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

package v1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// +kubebuilder:object:root=true

// Route exposes a Service through the OpenShift router.
type Route struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RouteSpec   `json:"spec"`
	Status RouteStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// RouteList is a collection of Routes.
type RouteList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Route `json:"items"`
}

// RouteSpec describes the hostname or path the route exposes and the backend
// it forwards to.
type RouteSpec struct {
	Host              string                 `json:"host,omitempty"`
	Subdomain         string                 `json:"subdomain,omitempty"`
	Path              string                 `json:"path,omitempty"`
	To                RouteTargetReference   `json:"to"`
	AlternateBackends []RouteTargetReference `json:"alternateBackends,omitempty"`
	Port              *RoutePort             `json:"port,omitempty"`
	TLS               *TLSConfig             `json:"tls,omitempty"`
	WildcardPolicy    WildcardPolicyType     `json:"wildcardPolicy,omitempty"`

	// HTTPHeaders is carried opaquely; the operator never sets it.
	HTTPHeaders *runtime.RawExtension `json:"httpHeaders,omitempty"`
}

// RouteTargetReference names the backend a route forwards to.
type RouteTargetReference struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Weight *int32 `json:"weight"`
}

// RoutePort selects the target port on the backing service.
type RoutePort struct {
	TargetPort intstr.IntOrString `json:"targetPort"`
}

// TLSTerminationType is where TLS is terminated.
type TLSTerminationType string

const (
	TLSTerminationEdge        TLSTerminationType = "edge"
	TLSTerminationPassthrough TLSTerminationType = "passthrough"
	TLSTerminationReencrypt   TLSTerminationType = "reencrypt"
)

// InsecureEdgeTerminationPolicyType controls plain HTTP traffic on a TLS route.
type InsecureEdgeTerminationPolicyType string

const (
	InsecureEdgeTerminationPolicyNone     InsecureEdgeTerminationPolicyType = "None"
	InsecureEdgeTerminationPolicyAllow    InsecureEdgeTerminationPolicyType = "Allow"
	InsecureEdgeTerminationPolicyRedirect InsecureEdgeTerminationPolicyType = "Redirect"
)

// TLSConfig defines TLS handling for a route.
type TLSConfig struct {
	Termination                   TLSTerminationType                `json:"termination"`
	Certificate                   string                            `json:"certificate,omitempty"`
	Key                           string                            `json:"key,omitempty"`
	CACertificate                 string                            `json:"caCertificate,omitempty"`
	DestinationCACertificate      string                            `json:"destinationCACertificate,omitempty"`
	InsecureEdgeTerminationPolicy InsecureEdgeTerminationPolicyType `json:"insecureEdgeTerminationPolicy,omitempty"`
	ExternalCertificate           *LocalObjectReference             `json:"externalCertificate,omitempty"`
}

// LocalObjectReference references an object in the route's namespace.
type LocalObjectReference struct {
	Name string `json:"name,omitempty"`
}

// WildcardPolicyType controls wildcard host admission.
type WildcardPolicyType string

// RouteStatus is written by the router.
type RouteStatus struct {
	Ingress []RouteIngress `json:"ingress,omitempty"`
}

// RouteIngress holds the admission state of a route on one router.
type RouteIngress struct {
	Host                    string                  `json:"host,omitempty"`
	RouterName              string                  `json:"routerName,omitempty"`
	Conditions              []RouteIngressCondition `json:"conditions,omitempty"`
	WildcardPolicy          WildcardPolicyType      `json:"wildcardPolicy,omitempty"`
	RouterCanonicalHostname string                  `json:"routerCanonicalHostname,omitempty"`
}

// RouteIngressCondition is a single admission condition.
type RouteIngressCondition struct {
	Type               string                 `json:"type"`
	Status             corev1.ConditionStatus `json:"status"`
	Reason             string                 `json:"reason,omitempty"`
	Message            string                 `json:"message,omitempty"`
	LastTransitionTime *metav1.Time           `json:"lastTransitionTime,omitempty"`
}
