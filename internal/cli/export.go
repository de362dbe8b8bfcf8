package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/report"
	"github.com/akyairhashvil/breathe/internal/util"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the practice guide as a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := out
			if path == "" {
				path = filepath.Join(util.ReportsDir(config.AppName), report.GuideFileName(time.Now()))
			}
			abs, err := report.ExportGuide(path, a.catalog, catalog.Tips)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Guide saved to %s\n", abs)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default ~/Documents/BREATHE/breathing_guide_<date>.pdf)")
	return cmd
}
