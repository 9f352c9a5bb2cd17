package minecraft

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/metadata"
)

// ComponentName is the app.kubernetes.io/name and component label value of
// every child.
const ComponentName = "server"

// childNames holds the derived names of every child of one Minecraft resource.
type childNames struct {
	ServiceAccount string
	Claim          string
	Deployment     string
	Service        string
	Route          string
	TLSSecret      string
}

// namesFor derives the child names for mc and validates them against the
// Kubernetes naming rules of their kinds.
func namesFor(mc *minecraftv1alpha1.Minecraft) (childNames, error) {
	n := childNames{
		ServiceAccount: mc.Name + "-server",
		Claim:          mc.Name + "-data",
		Deployment:     mc.Name + "-server",
		Service:        mc.Name + "-minecraft",
		Route:          mc.Name + "-minecraft",
		TLSSecret:      mc.Name + "-minecraft-tls",
	}

	checks := []struct {
		kind     string
		name     string
		validate func(string) []string
	}{
		{"ServiceAccount", n.ServiceAccount, validation.IsDNS1123Subdomain},
		{"PersistentVolumeClaim", n.Claim, validation.IsDNS1123Subdomain},
		{"Deployment", n.Deployment, validation.IsDNS1123Subdomain},
		{"Service", n.Service, validation.IsDNS1035Label},
		{"Route", n.Route, validation.IsDNS1123Subdomain},
		{"Secret", n.TLSSecret, validation.IsDNS1123Subdomain},
	}
	for _, c := range checks {
		if errs := c.validate(c.name); len(errs) > 0 {
			return childNames{}, fmt.Errorf("invalid %s name %q: %s", c.kind, c.name, strings.Join(errs, "; "))
		}
	}

	instance := metadata.BuildSelectorLabels(ComponentName, mc.Name)[metadata.LabelAppInstance]
	if errs := validation.IsValidLabelValue(instance); len(errs) > 0 {
		return childNames{}, fmt.Errorf("invalid instance label %q: %s", instance, strings.Join(errs, "; "))
	}

	return n, nil
}
