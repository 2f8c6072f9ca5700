// Package app composes dashboard modules into one HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/acme-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies     module.Dependencies
	PublicModules    []module.Module
	DashboardModules []module.Module
}

// Composer wires root mux mounts for each module group.
type Composer struct{}

// Compose builds a root HTTP handler from module groups.
func (Composer) Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if isDashboardPrefix(prefix) {
			return nil, fmt.Errorf("module %q has dashboard prefix %q in public group", feature.ID(), prefix)
		}
		if err := mountModule(root, feature, mount.Handler, prefix, seen); err != nil {
			return nil, err
		}
	}

	for _, feature := range input.DashboardModules {
		if feature == nil {
			return nil, fmt.Errorf("dashboard module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if !isDashboardPrefix(prefix) {
			return nil, fmt.Errorf("module %q must mount under %s, got %q", feature.ID(), routepath.DashboardPrefix, prefix)
		}
		if err := mountModule(root, feature, mount.Handler, prefix, seen); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// mountModule registers handler for prefix and, when prefix is not the
// root, for the same path without the trailing slash so the mux does not
// redirect it.
func mountModule(root *http.ServeMux, feature module.Module, handler http.Handler, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	root.Handle(prefix, handler)
	if exact := strings.TrimSuffix(prefix, "/"); exact != "" {
		root.Handle(exact, handler)
	}
	return nil
}

func isDashboardPrefix(prefix string) bool {
	return routepath.IsDashboardPath(prefix)
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
