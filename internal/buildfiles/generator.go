// Package buildfiles generates the container build files and the
// composition file from the resolved image selection. Every file is fully
// rewritten on each run; nothing is patched in place.
package buildfiles

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/armdeck/armdeck/internal/config"
	"github.com/armdeck/armdeck/internal/selector"
	"github.com/armdeck/armdeck/internal/workspace"
	"github.com/armdeck/armdeck/pkg/logger"
)

//go:embed templates/Dockerfile.app.tmpl
var appDockerfileTemplate string

//go:embed templates/Dockerfile.mysql.tmpl
var databaseDockerfileTemplate string

// Generator writes the Dockerfiles and compose file for one run.
type Generator struct {
	cfg *config.Config
	ws  *workspace.Workspace
}

// NewGenerator creates a generator for the given config and workspace.
func NewGenerator(cfg *config.Config, ws *workspace.Workspace) *Generator {
	return &Generator{cfg: cfg, ws: ws}
}

// Write renders all three files into the workspace build directory.
// The selection must be complete; file generation never proceeds with an
// unresolved image reference.
func (g *Generator) Write(sel selector.Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}

	app, err := g.RenderAppDockerfile(sel)
	if err != nil {
		return err
	}
	db, err := g.RenderDatabaseDockerfile(sel)
	if err != nil {
		return err
	}
	compose, err := g.RenderCompose()
	if err != nil {
		return err
	}

	files := map[string][]byte{
		g.ws.AppDockerfile():      app,
		g.ws.DatabaseDockerfile(): db,
		g.ws.ComposeFile():        compose,
	}
	for path, content := range files {
		if err := os.WriteFile(path, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug().Str("file", path).Msg("generated")
	}

	logger.Info().
		Str("database", sel.Database).
		Str("runtime", sel.Runtime).
		Msg("build files generated")
	return nil
}

// appContext is the template context for the runtime Dockerfile.
// The container-side port is fixed at 8085; only the host mapping in the
// compose file is configurable.
type appContext struct {
	RuntimeImage string
	ArtifactName string
}

// RenderAppDockerfile renders the runtime service build file.
func (g *Generator) RenderAppDockerfile(sel selector.Selection) ([]byte, error) {
	tmpl, err := template.New("Dockerfile.app").Parse(appDockerfileTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse app Dockerfile template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, appContext{
		RuntimeImage: sel.Runtime,
		ArtifactName: workspace.ArtifactName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render app Dockerfile template: %w", err)
	}
	return buf.Bytes(), nil
}

// databaseContext is the template context for the database Dockerfile.
type databaseContext struct {
	DatabaseImage string
}

// RenderDatabaseDockerfile renders the database service build file.
func (g *Generator) RenderDatabaseDockerfile(sel selector.Selection) ([]byte, error) {
	tmpl, err := template.New("Dockerfile.mysql").Parse(databaseDockerfileTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database Dockerfile template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, databaseContext{DatabaseImage: sel.Database}); err != nil {
		return nil, fmt.Errorf("failed to render database Dockerfile template: %w", err)
	}
	return buf.Bytes(), nil
}

// Compose file schema, kept to the subset armdeck generates.

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]struct{}       `yaml:"volumes"`
}

type composeService struct {
	Build       composeBuild      `yaml:"build"`
	Ports       []string          `yaml:"ports"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Restart     string            `yaml:"restart"`
}

type composeBuild struct {
	Context    string `yaml:"context"`
	Dockerfile string `yaml:"dockerfile"`
}

// ServiceDatabase and ServiceApp are the compose service names.
const (
	ServiceDatabase = "db"
	ServiceApp      = "app"
)

// RenderCompose renders the two-service composition file. The database
// keeps its data in a named volume; both services restart automatically.
func (g *Generator) RenderCompose() ([]byte, error) {
	dataVolume := g.cfg.Project + "-dbdata"

	doc := composeFile{
		Services: map[string]composeService{
			ServiceDatabase: {
				Build: composeBuild{
					Context:    ".",
					Dockerfile: "Dockerfile.mysql",
				},
				Ports: []string{fmt.Sprintf("%d:3306", g.cfg.Database.Port)},
				Environment: map[string]string{
					"MYSQL_ROOT_PASSWORD": g.cfg.Database.RootPassword,
					"MYSQL_DATABASE":      g.cfg.Database.Name,
				},
				Volumes: []string{dataVolume + ":/var/lib/mysql"},
				Restart: "always",
			},
			ServiceApp: {
				Build: composeBuild{
					Context:    ".",
					Dockerfile: "Dockerfile.app",
				},
				Ports:     []string{fmt.Sprintf("%d:8085", g.cfg.App.Port)},
				DependsOn: []string{ServiceDatabase},
				Restart:   "always",
			},
		},
		Volumes: map[string]struct{}{
			dataVolume: {},
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compose file: %w", err)
	}
	return out, nil
}
