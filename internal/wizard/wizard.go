// Package wizard provides the interactive policy selection form used by
// `nexsim simulate --interactive`.
package wizard

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/wefe-nexus/nexsim/internal/policy"
	"golang.org/x/term"
)

// Selection holds the choices collected by the wizard.
type Selection struct {
	Lab      string
	Policies []string
}

// RunPolicyWizard presents lab and policy pickers. labNames are the available
// regions (skipped when only one or none) and policies is the full catalog.
// preselected pre-checks entries in the multi-select.
func RunPolicyWizard(in io.Reader, out io.Writer, labNames []string, policies []policy.Policy, preselected []string) (*Selection, error) {
	if len(policies) == 0 {
		return nil, fmt.Errorf("no policies available to select")
	}

	sel := &Selection{Policies: preselected}
	if len(labNames) > 0 {
		sel.Lab = labNames[0]
	}

	var groups []*huh.Group

	if len(labNames) > 1 {
		labOpts := make([]huh.Option[string], len(labNames))
		for i, name := range labNames {
			labOpts[i] = huh.NewOption(name, name)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Living Lab").
				Description("Region to explore").
				Options(labOpts...).
				Value(&sel.Lab),
		))
	}

	policyOpts := make([]huh.Option[string], len(policies))
	for i, p := range policies {
		label := p.Title
		if p.Type != "" {
			label = fmt.Sprintf("%s (%s)", p.Title, p.Type)
		}
		policyOpts[i] = huh.NewOption(label, p.Title).
			Selected(contains(preselected, p.Title))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Policies").
			Description("Select the policies to simulate").
			Options(policyOpts...).
			Value(&sel.Policies).
			Validate(func(selected []string) error {
				if len(selected) == 0 {
					return fmt.Errorf("select at least one policy")
				}
				return nil
			}),
	))

	form := huh.NewForm(groups...).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	return sel, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
