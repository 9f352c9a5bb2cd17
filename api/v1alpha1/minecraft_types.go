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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// Minecraft Spec
// ============================================================================

// MinecraftSpec defines the desired state of Minecraft.
//
// There are no tunables yet. Every instance gets the same server topology.
type MinecraftSpec struct{}

// ============================================================================
// Minecraft Status
// ============================================================================

// MinecraftPhase is the outcome of the last reconciliation.
// +kubebuilder:validation:Enum=Active;Failed
type MinecraftPhase string

const (
	// PhaseActive means all child resources were applied successfully.
	PhaseActive MinecraftPhase = "Active"

	// PhaseFailed means the last reconciliation stopped on an error. The error
	// text is recorded in Status.Message.
	PhaseFailed MinecraftPhase = "Failed"
)

// MinecraftStatus defines the observed state of Minecraft.
type MinecraftStatus struct {
	// Phase is the outcome of the last reconciliation.
	// +optional
	Phase MinecraftPhase `json:"phase,omitempty"`

	// Message holds the error of the last failed reconciliation.
	// +optional
	Message *string `json:"message,omitempty"`
}

// ============================================================================
// Kind Definition and registration
// ============================================================================

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"
// +kubebuilder:printcolumn:name="Message",type="string",JSONPath=".status.message",priority=1
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Minecraft is the Schema for the minecrafts API
type Minecraft struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MinecraftSpec   `json:"spec,omitempty"`
	Status MinecraftStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MinecraftList contains a list of Minecraft
type MinecraftList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Minecraft `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Minecraft{}, &MinecraftList{})
}
