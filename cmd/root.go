// Package cmd implements the command-line interface for vireo.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/color"
	"github.com/vireo-player/vireo/config"
	"github.com/vireo-player/vireo/constant"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/history"
	"github.com/vireo-player/vireo/icon"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/playback"
	"github.com/vireo-player/vireo/style"
	"github.com/vireo-player/vireo/tui"
	"github.com/vireo-player/vireo/util"
	"github.com/vireo-player/vireo/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("write-history", "H", true, "Remember the playlist on exit")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.Flags().Lookup("write-history")))

	rootCmd.Flags().BoolP("paused", "p", false, "Queue the files without starting playback")
	lo.Must0(viper.BindPFlag(key.PlayerStartPaused, rootCmd.Flags().Lookup("paused")))

	rootCmd.Flags().Int64("wid", 0, "Render video into an existing native window")
	lo.Must0(viper.BindPFlag(key.EngineWID, rootCmd.Flags().Lookup("wid")))

	rootCmd.Flags().BoolP("continue", "c", false, "Resume the playlist of the previous run")
}

// rootCmd plays the given files and URLs.
var rootCmd = &cobra.Command{
	Use:   constant.Vireo + " [files or URLs...]",
	Short: "A terminal front-end for the mpv media player",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A terminal front-end for the mpv media player"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(config.Validate())

		binary := viper.GetString(key.EngineBinary)
		CheckDependencies(binary)

		setup, err := setupConfig()
		handleErr(err)

		options := tui.Options{
			Files: lo.Map(args, func(arg string, _ int) string {
				return util.ResolveMediaPath(arg)
			}),
			Paused:      viper.GetBool(key.PlayerStartPaused),
			Setup:       setup,
			Mpris:       viper.GetBool(key.MprisEnable),
			SaveHistory: viper.GetBool(key.HistorySave),
		}

		resume := lo.Must(cmd.Flags().GetBool("continue")) ||
			(len(args) == 0 && viper.GetBool(key.HistoryRestore))
		if resume {
			handleErr(restoreSession(&options))
		}

		mpv := engine.NewMPV(binary)
		handleErr(mpv.Create())
		handleErr(tui.Run(mpv, &options))
	},
}

// setupConfig collects the engine setup from the configuration.
func setupConfig() (engine.SetupConfig, error) {
	level, err := engine.ParseLogLevel(viper.GetString(key.EngineLogLevel))
	if err != nil {
		return engine.SetupConfig{}, err
	}

	filters, err := engine.ParseLogLevelFilters(viper.GetStringSlice(key.EngineLogFilters))
	if err != nil {
		return engine.SetupConfig{}, err
	}

	return engine.SetupConfig{
		WID:                viper.GetInt64(key.EngineWID),
		ScreenshotTemplate: where.Screenshots(),
		LogLevel:           level,
		LogFilters:         filters,
		ConfigEnable:       viper.GetBool(key.EngineConfigEnable),
		ConfigFile:         viper.GetString(key.EngineConfigFile),
		ExtraOptions:       viper.GetString(key.EngineOptions),
	}, nil
}

// restoreSession puts the saved playlist in front of any files given on the command line.
func restoreSession(options *tui.Options) error {
	saved, err := history.Get()
	if err != nil {
		return err
	}

	if saved == nil {
		log.Info("no saved session to continue")
		return nil
	}

	options.Files = append(saved.URIs(), options.Files...)
	if saved.Position > 0 {
		options.ResumeAt = mo.Some(saved.Position)
	}

	return nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
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

func handleErr(err error) {
	if err != nil {
		message := errorMessage(err)
		log.Error(message)
		_, _ = fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}
}

// errorMessage renders err for stderr. Engine failures keep their call stack.
func errorMessage(err error) string {
	var fatal *playback.FatalError
	if errors.As(err, &fatal) {
		return fatal.Diagnostic()
	}
	return fmt.Sprintf("%s %s", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
}
