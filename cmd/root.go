// Package cmd implements the tubex command line.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/icon"
	"github.com/tubex-cli/tubex/inline"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/log"
	"github.com/tubex-cli/tubex/style"
	"github.com/tubex-cli/tubex/util"
	"github.com/tubex-cli/tubex/version"
	"github.com/tubex-cli/tubex/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember resolved videos in the history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnExtract, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Use a browser TLS fingerprint for provider requests")
	lo.Must0(viper.BindPFlag(key.NetworkTLSFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	rootCmd.Flags().StringP("quality", "q", "", "Quality to print, a tier name or itag")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", completionQualities))

	rootCmd.Flags().StringP("format", "f", string(inline.Text), "Output format: "+strings.Join(inline.Formats(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return inline.Formats(), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().BoolP("candidates", "C", false, "Include every parsed descriptor in structured output")
	rootCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	rootCmd.Flags().Bool("schema", false, "Print the JSON schema of the structured output")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Tubex + " [url|id]...",
	Short: "Resolve direct video URLs and thumbnails",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve direct video URLs and thumbnails"),
	Example: `  tubex https://youtu.be/dQw4w9WgXcQ
  tubex -q mp4_720 -f json dQw4w9WgXcQ
  tubex                       # pick from the history`,
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		out, closeOut := outputWriter(cmd)
		defer closeOut()

		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(writeSchema(out))
			return
		}

		if len(args) == 0 {
			pickCmd.Run(pickCmd, args)
			return
		}

		format, err := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		handleErr(err)

		output, err := inline.Run(&inline.Options{
			Out:            out,
			Inputs:         args,
			Quality:        tierFlag(cmd, "quality", key.ExtractDefaultQuality),
			Format:         format,
			WithCandidates: lo.Must(cmd.Flags().GetBool("candidates")),
			NewSession:     newSession,
		})
		handleErr(err)

		if output.Failed() {
			if format == inline.Text {
				for _, r := range output.Results {
					if r.Error != "" {
						printFail(fmt.Sprintf("%s: %s", r.Input, r.Error))
					}
				}
			}
			closeOut()
			os.Exit(1)
		}
	},
}

func outputWriter(cmd *cobra.Command) (io.Writer, func()) {
	path := lo.Must(cmd.Flags().GetString("output"))
	if path == "" {
		return cmd.OutOrStdout(), func() {}
	}

	file, err := filesystem.OpenForWrite(path)
	handleErr(err)

	return file, func() { _ = file.Close() }
}

func writeSchema(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(inline.Schema())
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func printFail(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(msg, " \n"))
}

func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		printFail(err.Error())
		os.Exit(1)
	}
}
