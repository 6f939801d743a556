package diagnose

import (
	"fmt"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
)

// solutionRule maps an error message to a canned remediation.
type solutionRule struct {
	name    string
	matches func(message string) bool
	build   func(message string) domain.Solution
}

// solutionRules returns the rule table in priority order. The first
// matching rule wins.
func solutionRules(layout domain.LayoutSettings) []solutionRule {
	entry := layout.EntryFile
	return []solutionRule{
		{
			name: "entry-file-missing",
			matches: func(msg string) bool {
				return msg == domain.MsgEntryNotFound(entry) ||
					(strings.Contains(msg, "Missing") && strings.Contains(msg, entry))
			},
			build: func(msg string) domain.Solution {
				return domain.Solution{
					Issue:       msg,
					Solution:    fmt.Sprintf("Create %s file with basic Flask application structure", entry),
					CodeExample: entryFileExample,
				}
			},
		},
		{
			name:    "secret-key-missing",
			matches: func(msg string) bool { return strings.Contains(msg, "SECRET_KEY") },
			build: func(msg string) domain.Solution {
				return domain.Solution{
					Issue:       msg,
					Solution:    "Add SECRET_KEY to your Flask configuration",
					CodeExample: secretKeyExample,
				}
			},
		},
		{
			name:    "packages-missing",
			matches: func(msg string) bool { return strings.Contains(msg, domain.MissingPackagesPrefix) },
			build: func(msg string) domain.Solution {
				return domain.Solution{
					Issue:    msg,
					Solution: "Install missing packages using pip",
					Command:  "pip install -r " + layout.ManifestFile,
				}
			},
		},
		{
			name:    "templates-missing",
			matches: func(msg string) bool { return strings.Contains(msg, domain.MsgTemplatesDirNotFound) },
			build: func(msg string) domain.Solution {
				dir := layout.TemplatesDir
				return domain.Solution{
					Issue:    msg,
					Solution: "Create templates directory and basic templates",
					Command:  fmt.Sprintf("mkdir %[1]s && touch %[1]s/base.html %[1]s/index.html", dir),
				}
			},
		},
	}
}

// DeriveSolutions walks error findings in recorded order and emits at most
// one solution per finding.
func DeriveSolutions(issues []domain.Finding, layout domain.LayoutSettings) []domain.Solution {
	rules := solutionRules(layout)
	solutions := []domain.Solution{}
	for _, issue := range issues {
		if issue.Severity != domain.SeverityError {
			continue
		}
		for _, rule := range rules {
			if rule.matches(issue.Message) {
				solutions = append(solutions, rule.build(issue.Message))
				break
			}
		}
	}
	return solutions
}

const entryFileExample = `from flask import Flask
app = Flask(__name__)
app.config['SECRET_KEY'] = 'your-secret-key-here'

@app.route('/')
def home():
    return 'Hello World!'

if __name__ == '__main__':
    app.run(debug=True, host='0.0.0.0', port=5000)`

const secretKeyExample = `import os
app.config['SECRET_KEY'] = os.environ.get('SECRET_KEY') or 'your-secret-key-here'`
