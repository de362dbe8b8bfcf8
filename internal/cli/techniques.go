package cli

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newTechniquesCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "techniques",
		Short: "List the breathing techniques",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderCatalog(a.catalog, verbose))
			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include descriptions and benefits")
	return cmd
}

func renderCatalog(c *catalog.Catalog, verbose bool) string {
	headers := []string{"ID", "NAME", "PATTERN", "CYCLE"}
	if verbose {
		headers = append(headers, "ABOUT")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, e := range c.Entries() {
		row := []string{
			e.Technique.ID,
			e.Technique.Name,
			e.Technique.Pattern(),
			e.Technique.Cycle().String(),
		}
		if verbose {
			row = append(row, e.Description+"\n"+e.Pattern+"\n"+strings.Join(e.Benefits, ", "))
		}
		t.Row(row...)
	}
	return t.Render()
}

func joinIDs(c *catalog.Catalog) string {
	return strings.Join(c.IDs(), ", ")
}
