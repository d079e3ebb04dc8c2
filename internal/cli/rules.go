package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/rules"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format: table, yaml
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code]",
		Short: "List available rules",
		Long: `List the rules bearlint knows, or show full documentation for one.

Rules marked opt-in only run when force-enabled with extend-select.`,
		Example: `  # List all rules
  bearlint rules

  # Show details for one rule
  bearlint rules B006

  # List the except group only
  bearlint rules --group except

  # Machine-readable manifest
  bearlint rules --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, yaml")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	defs := rules.All()
	if opts.Group != "" {
		filtered := defs[:0]
		for _, def := range defs {
			if def.Group == opts.Group {
				filtered = append(filtered, def)
			}
		}
		defs = filtered
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Group != defs[j].Group {
			return defs[i].Group < defs[j].Group
		}
		return defs[i].Code < defs[j].Code
	})

	if opts.Format == "yaml" {
		infos := make([]lint.RuleInfo, 0, len(defs))
		for _, def := range defs {
			infos = append(infos, lint.GetRuleInfo(def))
		}
		data, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Group", "Severity", "Opt-in", "Description"})
	for _, def := range defs {
		optIn := ""
		if def.DisabledByDefault {
			optIn = "yes"
		}
		t.AppendRow(table.Row{def.Code, def.Group, def.Severity.String(), optIn, def.Description})
	}
	t.Render()
	return nil
}

func showRule(cmd *cobra.Command, code string) error {
	reg := lint.MustNewRegistry(rules.All())
	def, ok := reg.ByCode(strings.ToUpper(code))
	if !ok {
		return fmt.Errorf("unknown rule %q; run `bearlint rules` for the list", code)
	}

	info := lint.GetRuleInfo(def)
	data, err := yaml.Marshal(info)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
