package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
)

// NewSettingsCmd groups the commands that read and change user settings.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change user settings",
	}

	cmd.AddCommand(newSettingsListCmd())
	cmd.AddCommand(newSettingsGetCmd())
	cmd.AddCommand(newSettingsSetCmd())
	cmd.AddCommand(newSettingsResetCmd())
	return cmd
}

func newSettingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every setting with its current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := common.CurrentSettings()
			out := cmd.OutOrStdout()

			if common.JSONOutput {
				values := make(map[string]interface{})
				for _, key := range store.Keys() {
					v, err := store.Get(key)
					if err != nil {
						return err
					}
					values[key] = v
				}
				data, err := json.MarshalIndent(values, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode settings: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, key := range store.Keys() {
				value, err := store.Format(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s = %s\n", key, value)
			}
			return nil
		},
	}
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := common.CurrentSettings().Format(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting and save it",
		Long: `Change a setting and save it. Lists are comma separated, for example:

  fmjob settings set modules-blacklist vfs-menu,gtk-menu-trash`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateSetting(cmd, args[0], func() error {
				return common.CurrentSettings().SetString(args[0], args[1])
			})
		},
	}
}

func newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset KEY",
		Short: "Restore the default value of a setting and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateSetting(cmd, args[0], func() error {
				return common.CurrentSettings().Reset(args[0])
			})
		},
	}
}

// updateSetting applies change and saves the store if the value moved.
func updateSetting(cmd *cobra.Command, key string, change func() error) error {
	store := common.CurrentSettings()

	changed := false
	unsubscribe := store.OnChanged(func(k string) {
		if k == key {
			changed = true
		}
	})
	defer unsubscribe()

	if err := change(); err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", key)
		return nil
	}

	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	common.Log.Debug("setting saved", "key", key, "path", store.Path())

	value, _ := store.Format(key)
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}
