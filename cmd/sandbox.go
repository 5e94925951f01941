package cmd

import (
	"github.com/devdhirendra/enhanced-ns-sub000/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newSandboxCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run the in-memory fake backend",
		Long:  `Serves a slice of the gateway API from memory. Meant for local development and demos only.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			addr, _ := cmd.Flags().GetString("addr")
			if addr != "" {
				a.cfg.Sandbox.Addr = addr
			}
			return sandbox.Run(cmd.Context(), a.cfg.Sandbox, a.logger)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default SANDBOX_ADDR or :8080)")
	return cmd
}
