package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for classe resources.
	uriScheme = "classe://"
)

// knownLabels lists the labels the classification service is known to return.
var knownLabels = []domain.Classification{domain.LabelImportant, domain.LabelUnproductive}

// labelInfo describes one classification label.
type labelInfo struct {
	Label       string `json:"label"`
	Important   bool   `json:"important"`
	Description string `json:"description"`
}

func newLabelInfo(label domain.Classification) labelInfo {
	return labelInfo{
		Label:       label.String(),
		Important:   label.IsImportant(),
		Description: label.Description(),
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Classification service endpoint and request timeout",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "labels",
		Name:        "labels",
		Description: "Labels the classification service is known to return",
		MIMEType:    "application/json",
	}, s.handleLabelsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "labels/{label}",
		Name:        "label",
		Description: "How classe presents a specific label",
		MIMEType:    "application/json",
	}, s.handleLabelResource)
}

// handleSettingsResource returns the resolved client settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultClientSettings()
	path := ""
	if s.ports.Settings != nil {
		var err error
		settings, err = s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		path = s.ports.Settings.Path()
	}

	info := struct {
		Endpoint       string `json:"endpoint"`
		TimeoutSeconds int    `json:"timeout_seconds"`
		ConfigPath     string `json:"config_path,omitempty"`
	}{
		Endpoint:       settings.ClassifyURL(),
		TimeoutSeconds: int(settings.Timeout.Seconds()),
		ConfigPath:     path,
	}

	return jsonResult(req.Params.URI, info)
}

// handleLabelsResource returns every known label.
func (s *Server) handleLabelsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := make([]labelInfo, len(knownLabels))
	for i, label := range knownLabels {
		infos[i] = newLabelInfo(label)
	}
	return jsonResult(req.Params.URI, infos)
}

// handleLabelResource describes a single label. Unknown labels are still
// described, since the service may return labels classe has not seen.
func (s *Server) handleLabelResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	label := extractLabel(req.Params.URI)
	if label == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, newLabelInfo(domain.Classification(label)))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLabel extracts the label from a URI like classe://labels/{label}.
func extractLabel(uri string) string {
	const prefix = uriScheme + "labels/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
