package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServerAddress, serveCmd.Flags().Lookup("address")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction API over HTTP",
	Long: `Serve the extraction API over HTTP.

Endpoints:
  GET /api/resolve?input=<url|id>&quality=<tier>
  GET /api/thumbnail?input=<url|id>&quality=<tier>&redirect=true
  GET /api/health`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := viper.GetString(key.ServerAddress)
		cmd.Printf("%s Listening on http://%s\n", icon.Get(icon.Link), addr)
		handleErr(server.New(newSession).ListenAndServe(ctx, addr))
	},
}
