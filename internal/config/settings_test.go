package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/studyloadgo/internal/config"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestResolve_Defaults(t *testing.T) {
	s, err := config.Resolve(context.Background(), "", config.Overrides{})
	require.NoError(t, err)

	require.Equal(t, "java", s.JavaBin)
	require.Equal(t, "dbcp", s.SpringProfile)
	require.Empty(t, s.PortalHome)
	require.Empty(t, s.JarPath)
}

func TestResolve_IgnoresUnprefixedEnvVars(t *testing.T) {
	t.Setenv("HOME", "/home/someone")
	t.Setenv("JAR", "/tmp/stray.jar")
	t.Setenv("JAVA_BIN", "/tmp/stray-java")

	s, err := config.Resolve(context.Background(), "", config.Overrides{})
	require.NoError(t, err)

	require.Empty(t, s.PortalHome)
	require.Empty(t, s.JarPath)
	require.Equal(t, "java", s.JavaBin)
}

func TestResolve_SettingsFile(t *testing.T) {
	path := writeSettings(t, `
portal {
  java_bin       = "/usr/lib/jvm/java-21/bin/java"
  portal_home    = "/opt/portal"
  spring_profile = "mysql"
}
`)

	s, err := config.Resolve(context.Background(), path, config.Overrides{})
	require.NoError(t, err)

	require.Equal(t, "/usr/lib/jvm/java-21/bin/java", s.JavaBin)
	require.Equal(t, "/opt/portal", s.PortalHome)
	require.Equal(t, "mysql", s.SpringProfile)
}

func TestResolve_SettingsFileEnvInterpolation(t *testing.T) {
	t.Setenv("STUDYLOAD_TEST_HOME", "/srv/portal")

	path := writeSettings(t, `
portal {
  portal_home = env.STUDYLOAD_TEST_HOME
}
`)

	s, err := config.Resolve(context.Background(), path, config.Overrides{})
	require.NoError(t, err)
	require.Equal(t, "/srv/portal", s.PortalHome)
}

func TestResolve_EnvBeatsFile(t *testing.T) {
	t.Setenv("PORTAL_HOME", "/env/portal")
	t.Setenv("PORTAL_JAR", "/env/core.jar")

	path := writeSettings(t, `
portal {
  portal_home = "/file/portal"
}
`)

	s, err := config.Resolve(context.Background(), path, config.Overrides{})
	require.NoError(t, err)

	require.Equal(t, "/env/portal", s.PortalHome)
	require.Equal(t, "/env/core.jar", s.JarPath)
}

func TestResolve_OverridesBeatEnv(t *testing.T) {
	t.Setenv("PORTAL_JAR", "/env/core.jar")

	s, err := config.Resolve(context.Background(), "", config.Overrides{JarPath: "/cli/core.jar"})
	require.NoError(t, err)
	require.Equal(t, "/cli/core.jar", s.JarPath)
}

func TestResolve_BadSettingsFileFails(t *testing.T) {
	path := writeSettings(t, `portal { java_bin = `)

	_, err := config.Resolve(context.Background(), path, config.Overrides{})
	require.Error(t, err)
}

func TestResolve_MissingSettingsFileFails(t *testing.T) {
	_, err := config.Resolve(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"), config.Overrides{})
	require.Error(t, err)
}
