package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/model"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// ProjectURI returns the editor URI for a project's local directory.
func ProjectURI(p *entity.Project) uri.URI {
	return uri.File(p.LocalPath)
}

// ValidationToDiagnostics converts a validation payload into editor
// diagnostics against the project's directory.
func ValidationToDiagnostics(p *entity.Project, result *model.ValidationResult) (*protocol.PublishDiagnosticsParams, error) {
	var problems []model.ValidationProblem
	if len(result.Results) > 0 {
		if err := json.Unmarshal(result.Results, &problems); err != nil {
			return nil, fmt.Errorf("parsing validation results: %w", err)
		}
	}

	diagnostics := make([]protocol.Diagnostic, 0, len(problems))
	for _, problem := range problems {
		message := problem.Label
		if problem.Details != "" {
			message = fmt.Sprintf("%s: %s", problem.Label, problem.Details)
		}
		if problem.Filename != "" {
			message = fmt.Sprintf("%s (%s)", message, problem.Filename)
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Severity: severityOf(problem.Severity),
			Source:   "codewind",
			Message:  message,
		})
	}

	return &protocol.PublishDiagnosticsParams{
		URI:         ProjectURI(p),
		Diagnostics: diagnostics,
	}, nil
}

func severityOf(raw string) protocol.DiagnosticSeverity {
	if strings.EqualFold(raw, "error") {
		return protocol.DiagnosticSeverityError
	}
	return protocol.DiagnosticSeverityWarning
}
