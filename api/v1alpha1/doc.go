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

// Package v1alpha1 defines the API types for the Minecraft Operator.
//
// This package contains the Go type definitions for the Custom Resources in the
// minecraft.dentrassi.de API group. These types are used by kubebuilder to
// generate:
//   - CustomResourceDefinitions (CRDs)
//   - DeepCopy methods
//
// # Custom Resources
//
//   - Minecraft: A single game server instance. The operator owns every object
//     it creates for an instance.
//
// # Resource Hierarchy
//
//	Minecraft <name>
//	├── ServiceAccount <name>-server
//	├── PersistentVolumeClaim <name>-data
//	├── Deployment <name>-server
//	│   ├── init: download
//	│   ├── server
//	│   └── tls (reads Secret <name>-minecraft-tls)
//	├── Service <name>-minecraft
//	└── Route <name>-minecraft (OpenShift only)
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
// +kubebuilder:object:generate=true
// +groupName=minecraft.dentrassi.de
package v1alpha1
