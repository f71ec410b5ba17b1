package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vixseg/brandkit/internal/site"
)

func newServicesCmd(global *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "services [slug]",
		Short: "List the service catalogue with resolved icons",
		Long: fmt.Sprintf(`List the services shown on the site, or the one service named by slug.
Each service's icon key is resolved through the icon table; unknown keys
resolve to the fallback icon (%s).

Known icons: %s

Use --format json to export the catalogue for the site build.`, site.FallbackIcon.Name, strings.Join(site.IconNames(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := site.Services()
			if len(args) == 1 {
				s, ok := site.ServiceBySlug(args[0])
				if !ok {
					return fmt.Errorf("unknown service: %s", args[0])
				}
				list = []site.Service{s}
			}

			switch format {
			case "text", "":
				global.status(cmd.OutOrStdout(), "%s", headingStyle.Sprint("Services"))
				fmt.Fprint(cmd.OutOrStdout(), site.FormatServices(site.Render(list)))
			case "json":
				data, err := site.ExportServices(list)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")

	return cmd
}
