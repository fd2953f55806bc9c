// Package config resolves the importer's runtime settings: how to reach the
// collaborator JVM and its jar. Sources, in increasing precedence: built-in
// defaults, an optional HCL settings file, PORTAL_* environment variables,
// explicit CLI overrides.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/studyloadgo/internal/ctxlog"
)

// Settings is the fully resolved configuration the pipeline runs with.
type Settings struct {
	JavaBin        string
	PortalHome     string
	JarPath        string
	SpringProfile  string
	PropertiesPath string
}

const (
	defaultJavaBin       = "java"
	defaultSpringProfile = "dbcp"
)

// Overrides are the CLI-level settings knobs; empty fields mean "not given".
type Overrides struct {
	JarPath        string
	PortalHome     string
	PropertiesPath string
}

// settingsFile is the HCL schema of the optional settings file:
//
//	portal {
//	  java_bin       = "java"
//	  portal_home    = env.PORTAL_HOME
//	  jar            = "/opt/portal/lib/core-1.0.jar"
//	  spring_profile = "dbcp"
//	  properties     = "/etc/portal/portal.properties"
//	}
type settingsFile struct {
	Portal *portalBlock `hcl:"portal,block"`
}

type portalBlock struct {
	JavaBin       *string `hcl:"java_bin,optional"`
	PortalHome    *string `hcl:"portal_home,optional"`
	Jar           *string `hcl:"jar,optional"`
	SpringProfile *string `hcl:"spring_profile,optional"`
	Properties    *string `hcl:"properties,optional"`
}

// envOverrides maps the PORTAL_* environment variables. Keys are derived
// from the field names so only the prefixed form is looked up; an explicit
// envconfig tag would also register the bare name (HOME, JAR) as a fallback
// key and silently pick up unrelated variables.
type envOverrides struct {
	JavaBin       string `split_words:"true"`
	Home          string
	Jar           string
	SpringProfile string `split_words:"true"`
	Properties    string
}

// Resolve builds the effective Settings. A settings path that was given but
// cannot be loaded is a hard error; an empty path just skips that layer.
func Resolve(ctx context.Context, settingsPath string, ov Overrides) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	s := &Settings{
		JavaBin:       defaultJavaBin,
		SpringProfile: defaultSpringProfile,
	}

	if settingsPath != "" {
		if err := applyFile(s, settingsPath); err != nil {
			return nil, err
		}
		logger.Debug("Settings file applied.", "path", settingsPath)
	}

	var env envOverrides
	if err := envconfig.Process("portal", &env); err != nil {
		return nil, fmt.Errorf("failed to read PORTAL_* environment: %w", err)
	}
	applyString(&s.JavaBin, env.JavaBin)
	applyString(&s.PortalHome, env.Home)
	applyString(&s.JarPath, env.Jar)
	applyString(&s.SpringProfile, env.SpringProfile)
	applyString(&s.PropertiesPath, env.Properties)

	applyString(&s.JarPath, ov.JarPath)
	applyString(&s.PortalHome, ov.PortalHome)
	applyString(&s.PropertiesPath, ov.PropertiesPath)

	logger.Debug("Settings resolved.",
		"javaBin", s.JavaBin, "portalHome", s.PortalHome, "jar", s.JarPath,
		"springProfile", s.SpringProfile, "properties", s.PropertiesPath)
	return s, nil
}

func applyFile(s *Settings, path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var parsed settingsFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	if parsed.Portal == nil {
		return nil
	}

	applyStringPtr(&s.JavaBin, parsed.Portal.JavaBin)
	applyStringPtr(&s.PortalHome, parsed.Portal.PortalHome)
	applyStringPtr(&s.JarPath, parsed.Portal.Jar)
	applyStringPtr(&s.SpringProfile, parsed.Portal.SpringProfile)
	applyStringPtr(&s.PropertiesPath, parsed.Portal.Properties)
	return nil
}

// evalContext exposes the process environment as env.NAME so settings files
// can splice in deployment-specific paths.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}

	envVal := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		envVal = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}

func applyString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func applyStringPtr(dst *string, value *string) {
	if value != nil && *value != "" {
		*dst = *value
	}
}
