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

// Package status provides helpers for computing and comparing the status of
// Minecraft custom resources.
package status

import (
	"k8s.io/apimachinery/pkg/api/equality"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
)

// Active returns the status recorded after a fully successful reconciliation.
func Active() minecraftv1alpha1.MinecraftStatus {
	return minecraftv1alpha1.MinecraftStatus{
		Phase: minecraftv1alpha1.PhaseActive,
	}
}

// Failed returns the status recorded after a reconciliation stopped on err.
func Failed(err error) minecraftv1alpha1.MinecraftStatus {
	msg := err.Error()
	return minecraftv1alpha1.MinecraftStatus{
		Phase:   minecraftv1alpha1.PhaseFailed,
		Message: &msg,
	}
}

// ComputeStatus maps the outcome of a reconciliation to its status.
func ComputeStatus(err error) minecraftv1alpha1.MinecraftStatus {
	if err != nil {
		return Failed(err)
	}
	return Active()
}

// Changed reports whether two Minecraft objects differ in a way that warrants
// a status write.
func Changed(original, current *minecraftv1alpha1.Minecraft) bool {
	return !equality.Semantic.DeepEqual(original, current)
}
