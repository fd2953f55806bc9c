package executor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/studyloadgo/internal/fsutil"
)

// jarPrefix is the name prefix of the collaborator's importer artifact.
const jarPrefix = "core-"

// LocateJar resolves the importer jar before any step runs. An explicit path
// wins; otherwise the newest core-*.jar under <portalHome>/lib is used. An
// unresolvable jar is a configuration error, reported before launch.
func LocateJar(explicitPath, portalHome string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("configured importer jar %s is not usable: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	if portalHome == "" {
		return "", fmt.Errorf("cannot locate importer jar: neither a jar path nor a portal home is configured")
	}

	libDir := filepath.Join(portalHome, "lib")
	jars, err := fsutil.ListFilesByExtension(libDir, ".jar")
	if err != nil {
		return "", fmt.Errorf("cannot scan %s for the importer jar: %w", libDir, err)
	}

	// ListFilesByExtension sorts by name, so the last match is the newest
	// version under the collaborator's core-<version>.jar naming scheme.
	var found string
	for _, jar := range jars {
		if strings.HasPrefix(filepath.Base(jar), jarPrefix) {
			found = jar
		}
	}
	if found == "" {
		return "", fmt.Errorf("no %s*.jar found in %s", jarPrefix, libDir)
	}
	return found, nil
}

// ArgPrefix is the fixed program-independent argument prefix shared by every
// step: the active-profile selector, an optional properties override, and the
// classpath with the located jar.
func ArgPrefix(springProfile, propertiesPath, jarPath string) []string {
	args := []string{"-Dspring.profiles.active=" + springProfile}
	if propertiesPath != "" {
		args = append(args, "-Dportal.properties="+propertiesPath)
	}
	return append(args, "-cp", jarPath)
}
