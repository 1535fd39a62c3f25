package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ncobase/tablekit/ctxutil"
	"github.com/ncobase/tablekit/ecode"
	"github.com/ncobase/tablekit/table"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command
func NewRenderCommand(configFile *string) *cobra.Command {
	var (
		params      []string
		roles       []string
		permissions []string
		admin       bool
		seed        bool
		indent      bool
	)

	cmd := &cobra.Command{
		Use:   "render [table]",
		Short: "Render one table and print the JSON envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseParams(params)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg, db, cleanup, err := setup(ctx, *configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			reg, err := registry(ctx, db, cfg.Table, seed)
			if err != nil {
				return err
			}
			tbl, err := reg.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(reg.Keys(), ", "))
			}

			env, err := tbl.Render(table.NewRequest(identity(ctx, roles, permissions, admin), values))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(env)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "request parameter as key=value, repeatable")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "roles of the rendering user")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "permissions of the rendering user")
	cmd.Flags().BoolVar(&admin, "admin", false, "render as an administrator")
	cmd.Flags().BoolVar(&seed, "seed", true, "create and seed the demo users relation")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")
	return cmd
}

// parseParams turns key=value pairs into query values.
func parseParams(pairs []string) (url.Values, error) {
	values := url.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("param %q: %s, want key=value", p, ecode.FieldIsInvalid("format"))
		}
		values.Add(strings.TrimSpace(k), v)
	}
	return values, nil
}

func identity(ctx context.Context, roles, permissions []string, admin bool) context.Context {
	if len(roles) > 0 {
		ctx = ctxutil.SetUserRoles(ctx, roles)
	}
	if len(permissions) > 0 {
		ctx = ctxutil.SetUserPermissions(ctx, permissions)
	}
	if admin {
		ctx = ctxutil.SetUserIsAdmin(ctx, true)
	}
	return ctx
}
