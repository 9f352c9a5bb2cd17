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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"
)

func loadCRD(t *testing.T) *apiextensionsv1.CustomResourceDefinition {
	t.Helper()

	path := filepath.Join("..", "..", "config", "crd", "bases", "minecraft.dentrassi.de_minecrafts.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}

	crd := &apiextensionsv1.CustomResourceDefinition{}
	if err := yaml.UnmarshalStrict(data, crd); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return crd
}

func TestCRDMatchesTypes(t *testing.T) {
	crd := loadCRD(t)

	if got := crd.Spec.Group; got != GroupVersion.Group {
		t.Errorf("group = %q, want %q", got, GroupVersion.Group)
	}
	if got := crd.Spec.Names.Kind; got != "Minecraft" {
		t.Errorf("kind = %q, want Minecraft", got)
	}
	if got := crd.Spec.Scope; got != apiextensionsv1.NamespaceScoped {
		t.Errorf("scope = %q, want %q", got, apiextensionsv1.NamespaceScoped)
	}
	if len(crd.Spec.Versions) != 1 {
		t.Fatalf("got %d versions, want 1", len(crd.Spec.Versions))
	}

	version := crd.Spec.Versions[0]
	if version.Name != GroupVersion.Version {
		t.Errorf("version = %q, want %q", version.Name, GroupVersion.Version)
	}
	if !version.Served || !version.Storage {
		t.Errorf("version must be served and stored, got served=%v storage=%v", version.Served, version.Storage)
	}
	if version.Subresources == nil || version.Subresources.Status == nil {
		t.Error("status subresource must be enabled")
	}

	phase := version.Schema.OpenAPIV3Schema.Properties["status"].Properties["phase"]
	var got []string
	for _, v := range phase.Enum {
		got = append(got, string(v.Raw))
	}
	want := []string{`"` + string(PhaseActive) + `"`, `"` + string(PhaseFailed) + `"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("phase enum mismatch (-want +got):\n%s", diff)
	}
}
